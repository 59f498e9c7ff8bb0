package repository

import (
	"context"

	"indexing-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	FailureRepository
}

// FailureRepository - Operations for propagation_failures table
type FailureRepository interface {
	CreateFailure(ctx context.Context, opt CreateFailureOptions) (model.PropagationFailure, error)
	ListFailures(ctx context.Context, opt ListFailuresOptions) ([]model.PropagationFailure, error)
	CountFailures(ctx context.Context) (int64, error)
	MarkResolved(ctx context.Context, id string) error
}
