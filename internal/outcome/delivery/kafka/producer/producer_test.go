package producer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexing-srv/internal/model"
	kafkaDelivery "indexing-srv/internal/outcome/delivery/kafka"
	"indexing-srv/pkg/log"
)

type fakeKafka struct {
	key, value []byte
}

func (f *fakeKafka) Publish(key, value []byte) error {
	f.key, f.value = key, value
	return nil
}
func (f *fakeKafka) Close() error       { return nil }
func (f *fakeKafka) HealthCheck() error { return nil }

func TestPublishOutcome(t *testing.T) {
	k := &fakeKafka{}
	p := New(log.NewNop(), k)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := p.PublishOutcome(context.Background(), model.StageResult{
		Route:      model.RouteDelete,
		Branch:     model.BranchIndex,
		Descriptor: model.ResourceDescriptor{Identifier: "/objects/42", BaseURL: "http://r/rest"},
		EventType:  model.EventTypeNodeRemoved,
		Err:        model.ErrTransport,
		At:         at,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://r/rest/objects/42", string(k.key))

	var msg kafkaDelivery.OutcomeMessage
	require.NoError(t, json.Unmarshal(k.value, &msg))
	assert.Equal(t, kafkaDelivery.OutcomeMessage{
		Route:      model.RouteDelete,
		Branch:     model.BranchIndex,
		Identifier: "/objects/42",
		BaseURL:    "http://r/rest",
		URI:        "http://r/rest/objects/42",
		EventType:  model.EventTypeNodeRemoved,
		Status:     kafkaDelivery.StatusFailed,
		Error:      "transport error",
		At:         at,
	}, msg)
}
