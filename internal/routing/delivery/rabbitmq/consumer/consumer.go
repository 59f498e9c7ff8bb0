package consumer

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	rabbitDelivery "indexing-srv/internal/routing/delivery/rabbitmq"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// Consume routes change events until ctx is done.
func (c *Consumer) Consume(ctx context.Context) {
	c.l.Infof(ctx, "routing.delivery.rabbitmq.consumer.Consume: consuming %s", c.queue)
	pkgRabbitMQ.Subscribe(ctx, c.l, c.conn, c.setup, c.handle)
}

func (c *Consumer) setup(ch pkgRabbitMQ.IChannel) (<-chan amqp.Delivery, error) {
	if _, err := ch.QueueDeclare(pkgRabbitMQ.QueueArgs{Name: c.queue, Durable: true}); err != nil {
		return nil, err
	}

	if c.exchange != "" {
		if err := ch.ExchangeDeclare(pkgRabbitMQ.ExchangeArgs{
			Name:    c.exchange,
			Type:    pkgRabbitMQ.ExchangeTypeTopic,
			Durable: true,
		}); err != nil {
			return nil, err
		}
		if err := ch.QueueBind(pkgRabbitMQ.QueueBindArgs{
			Queue:      c.queue,
			Exchange:   c.exchange,
			RoutingKey: rabbitDelivery.BindingKeyAll,
		}); err != nil {
			return nil, err
		}
	}

	if c.prefetch > 0 {
		if err := ch.Qos(c.prefetch); err != nil {
			return nil, err
		}
	}

	return ch.Consume(pkgRabbitMQ.ConsumeArgs{Queue: c.queue})
}

// handle acks every delivery once dispatched. Failures are reported by the
// router and retried from the failure table, never redelivered by the bus.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	ev := rabbitDelivery.ToChangeEvent(d.Headers, c.defaultBaseURL)

	if err := c.uc.Route(context.WithoutCancel(ctx), ev); err != nil {
		c.l.Warnf(ctx, "routing.delivery.rabbitmq.consumer.handle: event %q not routed: %v", ev.Identifier, err)
	}

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "routing.delivery.rabbitmq.consumer.handle: ack failed: %v", err)
	}
}
