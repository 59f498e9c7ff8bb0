package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"indexing-srv/pkg/log"
)

// SetupFunc declares the topology on ch and starts consuming.
type SetupFunc func(ch IChannel) (<-chan amqp.Delivery, error)

// DeliveryHandler processes one delivery. It owns the ack.
type DeliveryHandler func(ctx context.Context, d amqp.Delivery)

// Subscribe consumes deliveries until ctx is done. The channel is opened and
// set up again whenever the delivery stream ends, for instance after a reconnect.
func Subscribe(ctx context.Context, l log.Logger, conn IRabbitMQ, setup SetupFunc, handle DeliveryHandler) {
	for {
		ch, deliveries, err := open(conn, setup)
		if err != nil {
			l.Warnf(ctx, "pkg.rabbitmq.Subscribe: setup failed: %v", err)
		} else {
			drain(ctx, deliveries, handle)
			_ = ch.Close()
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(RetryConnectionDelay):
		}
	}
}

func open(conn IRabbitMQ, setup SetupFunc) (IChannel, <-chan amqp.Delivery, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	deliveries, err := setup(ch)
	if err != nil {
		_ = ch.Close()
		return nil, nil, err
	}
	return ch, deliveries, nil
}

func drain(ctx context.Context, deliveries <-chan amqp.Delivery, handle DeliveryHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			handle(ctx, d)
		}
	}
}
