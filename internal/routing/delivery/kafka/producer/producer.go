package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"indexing-srv/internal/model"
	kafkaDelivery "indexing-srv/internal/routing/delivery/kafka"
)

// PublishEvent publishes ev keyed by identifier
func (p *implProducer) PublishEvent(ctx context.Context, ev model.ChangeEvent) error {
	body, err := json.Marshal(kafkaDelivery.NewEventMessage(ev))
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := p.producer.Publish([]byte(ev.Identifier), body); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	p.l.Debugf(ctx, "routing.delivery.kafka.producer.PublishEvent: republished %s %s", ev.EventType, ev.Identifier)
	return nil
}
