package producer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexing-srv/internal/model"
	rabbitDelivery "indexing-srv/internal/routing/delivery/rabbitmq"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

type fakeChannel struct {
	pkgRabbitMQ.IChannel
	published []pkgRabbitMQ.PublishArgs
}

func (f *fakeChannel) Publish(_ context.Context, args pkgRabbitMQ.PublishArgs) error {
	f.published = append(f.published, args)
	return nil
}

func TestPublishEvent(t *testing.T) {
	ev := model.ChangeEvent{Identifier: "/objects/42", EventType: "NODE_ADDED", BaseURL: "http://localhost:8080/rest"}

	t.Run("exchange", func(t *testing.T) {
		ch := &fakeChannel{}
		p := New(log.NewNop(), ch, "fedora", "indexing.events")

		require.NoError(t, p.PublishEvent(context.Background(), ev))

		require.Len(t, ch.published, 1)
		args := ch.published[0]
		assert.Equal(t, "fedora", args.Exchange)
		assert.Empty(t, args.RoutingKey)
		assert.Equal(t, ev, rabbitDelivery.ToChangeEvent(args.Msg.Headers, ""))
		assert.Equal(t, uint8(pkgRabbitMQ.DeliveryModePersistent), args.Msg.DeliveryMode)
	})

	t.Run("default exchange", func(t *testing.T) {
		ch := &fakeChannel{}
		p := New(log.NewNop(), ch, "", "indexing.events")

		require.NoError(t, p.PublishEvent(context.Background(), ev))

		assert.Equal(t, "indexing.events", ch.published[0].RoutingKey)
	})
}
