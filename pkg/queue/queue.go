package queue

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"indexing-srv/pkg/log"
)

const (
	defaultWorkers = 2
	defaultSize    = 100
)

// Queue is a bounded FIFO drained by a fixed pool of workers.
// Producers block when the buffer is full.
type Queue[T any] struct {
	name    string
	l       log.Logger
	ch      chan T
	workers int

	mu     sync.RWMutex
	closed bool

	startMu sync.Mutex
	started bool
	g       errgroup.Group
}

// New creates a queue holding at most size entries, drained by workers goroutines.
func New[T any](l log.Logger, name string, size, workers int) *Queue[T] {
	if size <= 0 {
		size = defaultSize
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Queue[T]{
		name:    name,
		l:       l,
		ch:      make(chan T, size),
		workers: workers,
	}
}

// Name returns the queue name.
func (q *Queue[T]) Name() string {
	return q.name
}

// Len returns the number of entries waiting.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Push implements Pusher.
func (q *Queue[T]) Push(ctx context.Context, v T) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- v:
		queueDepth.WithLabelValues(q.name).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPush implements Pusher.
func (q *Queue[T]) TryPush(v T) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- v:
		queueDepth.WithLabelValues(q.name).Inc()
		return nil
	default:
		queueRejectedTotal.WithLabelValues(q.name).Inc()
		return ErrQueueFull
	}
}

// Start launches the workers. Each entry is handed to h with ctx.
// Start must run before producers can fill the buffer; later calls have no effect.
func (q *Queue[T]) Start(ctx context.Context, h Handler[T]) {
	q.startMu.Lock()
	defer q.startMu.Unlock()
	if q.started {
		return
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.g.Go(func() error {
			for v := range q.ch {
				queueDepth.WithLabelValues(q.name).Dec()
				q.handle(ctx, h, v)
				queueProcessedTotal.WithLabelValues(q.name).Inc()
			}
			return nil
		})
	}

	q.l.Infof(ctx, "pkg.queue.Start: queue %s started with %d workers", q.name, q.workers)
}

func (q *Queue[T]) handle(ctx context.Context, h Handler[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			q.l.Errorf(ctx, "pkg.queue.handle: queue %s worker panic: %v", q.name, r)
		}
	}()
	h(ctx, v)
}

// Stop closes the queue and waits until the workers have drained it.
// Entries pushed before Stop are still handled.
func (q *Queue[T]) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	q.startMu.Lock()
	started := q.started
	q.startMu.Unlock()
	if started {
		_ = q.g.Wait()
	}
	q.l.Infof(context.Background(), "pkg.queue.Stop: queue %s stopped", q.name)
}
