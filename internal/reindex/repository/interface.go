package repository

import (
	"context"
)

//go:generate mockery --name VisitedRepository
type VisitedRepository interface {
	// MarkVisited records a visit. Reports whether this was the first visit of
	// the resource within the walk.
	MarkVisited(ctx context.Context, opt MarkVisitedOptions) (bool, error)
}
