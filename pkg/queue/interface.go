package queue

import "context"

// Pusher is the producer side of a Queue.
type Pusher[T any] interface {
	// Push blocks until v is queued, ctx is done or the queue is closed.
	Push(ctx context.Context, v T) error
	// TryPush queues v without blocking. Returns ErrQueueFull when there is no room.
	TryPush(v T) error
}

// Handler processes one queued value.
type Handler[T any] func(ctx context.Context, v T)
