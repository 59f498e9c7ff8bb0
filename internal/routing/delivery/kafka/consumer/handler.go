package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"indexing-srv/internal/model"
	kafkaDelivery "indexing-srv/internal/routing/delivery/kafka"
)

type eventHandler struct {
	consumer *Consumer
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks every message once dispatched, routed or not.
func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.consumer.handleMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func (c *Consumer) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) {
	var message kafkaDelivery.EventMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "routing.delivery.kafka.consumer.handleMessage: invalid message at partition %d offset %d (skipping): %v",
			msg.Partition, msg.Offset, err)
		_ = c.uc.Reject(context.WithoutCancel(ctx), model.ChangeEvent{BaseURL: c.defaultBaseURL}, err)
		return
	}

	ev := message.ToChangeEvent(c.defaultBaseURL)
	if err := c.uc.Route(context.WithoutCancel(ctx), ev); err != nil {
		c.l.Warnf(ctx, "routing.delivery.kafka.consumer.handleMessage: event %q not routed: %v", ev.Identifier, err)
	}
}
