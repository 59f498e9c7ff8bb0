package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	rabbitDelivery "indexing-srv/internal/reindex/delivery/rabbitmq"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// Consume starts walks until ctx is done.
func (c *Consumer) Consume(ctx context.Context) {
	c.l.Infof(ctx, "reindex.delivery.rabbitmq.consumer.Consume: consuming %s", c.queue)
	pkgRabbitMQ.Subscribe(ctx, c.l, c.conn, c.setup, c.handle)
}

func (c *Consumer) setup(ch pkgRabbitMQ.IChannel) (<-chan amqp.Delivery, error) {
	if _, err := ch.QueueDeclare(pkgRabbitMQ.QueueArgs{Name: c.queue, Durable: true}); err != nil {
		return nil, err
	}
	if c.prefetch > 0 {
		if err := ch.Qos(c.prefetch); err != nil {
			return nil, err
		}
	}
	return ch.Consume(pkgRabbitMQ.ConsumeArgs{Queue: c.queue})
}

// handle acks once the walk root is queued. Malformed requests are dropped.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	defer func() {
		if err := d.Ack(false); err != nil {
			c.l.Errorf(ctx, "reindex.delivery.rabbitmq.consumer.handle: ack failed: %v", err)
		}
	}()

	var msg rabbitDelivery.ReindexMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.l.Warnf(ctx, "reindex.delivery.rabbitmq.consumer.handle: invalid message (skipping): %v", err)
		return
	}
	if msg.WalkID == "" || msg.BaseURL == "" {
		c.l.Warnf(ctx, "reindex.delivery.rabbitmq.consumer.handle: missing walk id or base url (skipping)")
		return
	}

	if err := c.uc.Walk(context.WithoutCancel(ctx), msg.ToWalkItem()); err != nil {
		c.l.Errorf(ctx, "reindex.delivery.rabbitmq.consumer.handle: walk %s not started: %v", msg.WalkID, err)
	}
}
