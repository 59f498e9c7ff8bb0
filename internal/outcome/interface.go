package outcome

import (
	"context"

	"indexing-srv/internal/model"
)

// Reporter receives the tagged result of every pipeline step.
type Reporter interface {
	Report(ctx context.Context, r model.StageResult)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Reporter
	// Start launches the sink worker. Stop drains pending results.
	Start(ctx context.Context)
	Stop()
	ListFailed(ctx context.Context, ip ListFailedInput) (ListFailedOutput, error)
	RetryFailed(ctx context.Context, ip RetryFailedInput) (RetryFailedOutput, error)
}

// Publisher streams stage results to downstream consumers.
type Publisher interface {
	PublishOutcome(ctx context.Context, r model.StageResult) error
}

// EventPublisher re-emits change events onto the event bus.
type EventPublisher interface {
	PublishEvent(ctx context.Context, e model.ChangeEvent) error
}
