package reindex

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Trigger starts a walk at the resource addressed by a reindex request.
	Trigger(ctx context.Context, ip TriggerInput) (TriggerOutput, error)
	// Walk puts the root of a triggered walk on the reindex queue.
	Walk(ctx context.Context, item WalkItem) error
	// Visit indexes item and queues its children. Run by reindex queue workers.
	Visit(ctx context.Context, item WalkItem)
}

// Publisher hands walk requests to the consumer side.
type Publisher interface {
	PublishReindex(ctx context.Context, item WalkItem) error
}
