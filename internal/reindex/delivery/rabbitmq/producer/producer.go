package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"indexing-srv/internal/reindex"
	rabbitDelivery "indexing-srv/internal/reindex/delivery/rabbitmq"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// PublishReindex publishes a walk request
func (p *implProducer) PublishReindex(ctx context.Context, item reindex.WalkItem) error {
	body, err := json.Marshal(rabbitDelivery.NewReindexMessage(item))
	if err != nil {
		return fmt.Errorf("failed to marshal reindex request: %w", err)
	}

	if err := p.ch.Publish(ctx, pkgRabbitMQ.PublishArgs{
		RoutingKey: p.queue,
		Msg: pkgRabbitMQ.Publishing{
			ContentType:  pkgRabbitMQ.ContentTypeJSON,
			DeliveryMode: pkgRabbitMQ.DeliveryModePersistent,
			MessageId:    item.WalkID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish reindex request: %w", err)
	}

	p.l.Debugf(ctx, "reindex.delivery.rabbitmq.producer.PublishReindex: walk %s for %s", item.WalkID, item.Descriptor.Identifier)
	return nil
}
