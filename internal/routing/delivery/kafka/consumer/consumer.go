package consumer

import (
	"context"
)

// Consume routes change events until ctx is done.
func (c *Consumer) Consume(ctx context.Context) {
	go func() {
		for err := range c.group.Errors() {
			c.l.Errorf(ctx, "routing.delivery.kafka.consumer.Consume: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "routing.delivery.kafka.consumer.Consume: consuming %s", c.topic)
	if err := c.group.ConsumeWithContext(ctx, []string{c.topic}, &eventHandler{consumer: c}); err != nil {
		c.l.Errorf(ctx, "routing.delivery.kafka.consumer.Consume: %v", err)
	}
}
