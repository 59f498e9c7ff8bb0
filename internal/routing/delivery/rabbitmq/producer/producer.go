package producer

import (
	"context"
	"fmt"
	"time"

	"indexing-srv/internal/model"
	rabbitDelivery "indexing-srv/internal/routing/delivery/rabbitmq"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// PublishEvent publishes ev with repository event headers
func (p *implProducer) PublishEvent(ctx context.Context, ev model.ChangeEvent) error {
	args := pkgRabbitMQ.PublishArgs{
		Exchange: p.exchange,
		Msg: pkgRabbitMQ.Publishing{
			Headers:      rabbitDelivery.ToHeaders(ev),
			DeliveryMode: pkgRabbitMQ.DeliveryModePersistent,
			Timestamp:    time.Now().UTC(),
		},
	}
	if p.exchange == "" {
		args.RoutingKey = p.queue
	}

	if err := p.ch.Publish(ctx, args); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	p.l.Debugf(ctx, "routing.delivery.rabbitmq.producer.PublishEvent: republished %s %s", ev.EventType, ev.Identifier)
	return nil
}
