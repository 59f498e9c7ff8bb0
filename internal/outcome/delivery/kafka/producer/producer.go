package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"indexing-srv/internal/model"
	kafkaDelivery "indexing-srv/internal/outcome/delivery/kafka"
)

// PublishOutcome publishes a stage result keyed by resource URI
func (p *implProducer) PublishOutcome(ctx context.Context, r model.StageResult) error {
	body, err := json.Marshal(toMessage(r))
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	key := []byte(r.Descriptor.URI())
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish outcome: %w", err)
	}

	p.l.Debugf(ctx, "outcome.delivery.kafka.producer.PublishOutcome: %s/%s for %s", r.Route, r.Branch, r.Descriptor.URI())
	return nil
}

func toMessage(r model.StageResult) kafkaDelivery.OutcomeMessage {
	msg := kafkaDelivery.OutcomeMessage{
		Route:      r.Route,
		Branch:     r.Branch,
		Identifier: r.Descriptor.Identifier,
		BaseURL:    r.Descriptor.BaseURL,
		URI:        r.Descriptor.URI(),
		EventType:  r.EventType,
		Status:     kafkaDelivery.StatusOK,
		At:         r.At,
	}
	if r.Failed() {
		msg.Status = kafkaDelivery.StatusFailed
		msg.Error = r.ErrorMessage()
	}
	return msg
}
