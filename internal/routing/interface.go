package routing

import (
	"context"

	"indexing-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Route classifies ev and hands its resource to the delete or update stage.
	// Failures are reported to the outcome sink and returned for logging only.
	Route(ctx context.Context, ev model.ChangeEvent) error
	// Reject reports a message that could not be decoded into an event.
	Reject(ctx context.Context, ev model.ChangeEvent, cause error) error
}
