package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexing-srv/internal/model"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
)

type fakeUseCase struct {
	events   []model.ChangeEvent
	rejected []error
	err      error
}

func (f *fakeUseCase) Route(_ context.Context, ev model.ChangeEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func (f *fakeUseCase) Reject(_ context.Context, _ model.ChangeEvent, cause error) error {
	f.rejected = append(f.rejected, cause)
	return cause
}

type fakeGroup struct {
	pkgKafka.IConsumer
}

func newTestConsumer(t *testing.T, uc *fakeUseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:         log.NewNop(),
		Group:          fakeGroup{},
		UseCase:        uc,
		Topic:          "repository.events",
		DefaultBaseURL: "http://localhost:8080/rest",
	})
	require.NoError(t, err)
	return c
}

func TestHandleMessage(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	c.handleMessage(context.Background(), &sarama.ConsumerMessage{
		Value: []byte(`{"identifier":"/objects/42","event_type":"http://fedora.info/definitions/v4/repository#NODE_REMOVED"}`),
	})

	require.Len(t, uc.events, 1)
	assert.Equal(t, model.ChangeEvent{
		Identifier: "/objects/42",
		EventType:  model.EventTypeNodeRemoved,
		BaseURL:    "http://localhost:8080/rest",
	}, uc.events[0])
	assert.True(t, uc.events[0].IsDelete())
}

func TestHandleMessageInvalid(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`not json`)})

	assert.Empty(t, uc.events)
	assert.Len(t, uc.rejected, 1)
}

func TestHandleMessageRouteFailure(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("closed")}
	c := newTestConsumer(t, uc)

	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"identifier":"/objects/1"}`)})

	assert.Len(t, uc.events, 1)
}
