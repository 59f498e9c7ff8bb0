package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexing-srv/pkg/log"
)

func TestQueueHandlesEveryEntry(t *testing.T) {
	q := New[int](log.NewNop(), "test-all", 4, 3)

	var mu sync.Mutex
	seen := map[int]bool{}
	q.Start(context.Background(), func(_ context.Context, v int) {
		mu.Lock()
		seen[v] = true
		mu.Unlock()
	})

	for i := 0; i < 50; i++ {
		require.NoError(t, q.Push(context.Background(), i))
	}
	q.Stop()

	assert.Len(t, seen, 50)
}

func TestQueuePushBlocksWhenFull(t *testing.T) {
	q := New[int](log.NewNop(), "test-block", 1, 1)

	release := make(chan struct{})
	q.Start(context.Background(), func(_ context.Context, _ int) { <-release })

	require.NoError(t, q.Push(context.Background(), 1)) // taken by the worker
	require.Eventually(t, func() bool { return q.Len() == 0 }, time.Second, time.Millisecond)
	require.NoError(t, q.Push(context.Background(), 2)) // fills the buffer

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Push(ctx, 3)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	q.Stop()
}

func TestQueueTryPush(t *testing.T) {
	q := New[int](log.NewNop(), "test-try", 1, 1)

	require.NoError(t, q.TryPush(1))
	assert.ErrorIs(t, q.TryPush(2), ErrQueueFull)

	var handled atomic.Int32
	q.Start(context.Background(), func(_ context.Context, _ int) { handled.Add(1) })
	q.Stop()

	assert.Equal(t, int32(1), handled.Load())
}

func TestQueueClosed(t *testing.T) {
	q := New[string](log.NewNop(), "test-closed", 2, 1)
	q.Start(context.Background(), func(context.Context, string) {})
	q.Stop()
	q.Stop()

	assert.ErrorIs(t, q.Push(context.Background(), "x"), ErrQueueClosed)
	assert.ErrorIs(t, q.TryPush("x"), ErrQueueClosed)
}

func TestQueueSurvivesHandlerPanic(t *testing.T) {
	q := New[int](log.NewNop(), "test-panic", 4, 1)

	var handled atomic.Int32
	q.Start(context.Background(), func(_ context.Context, v int) {
		if v == 0 {
			panic("boom")
		}
		handled.Add(1)
	})

	require.NoError(t, q.Push(context.Background(), 0))
	require.NoError(t, q.Push(context.Background(), 1))
	q.Stop()

	assert.Equal(t, int32(1), handled.Load())
}
