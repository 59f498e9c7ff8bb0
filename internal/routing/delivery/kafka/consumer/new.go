package consumer

import (
	"fmt"

	"indexing-srv/internal/routing"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
)

// Config holds the configuration for the event consumer
type Config struct {
	Logger         log.Logger
	Group          pkgKafka.IConsumer
	UseCase        routing.UseCase
	Topic          string
	DefaultBaseURL string
}

// Consumer consumes repository change events from Kafka
type Consumer struct {
	l              log.Logger
	group          pkgKafka.IConsumer
	uc             routing.UseCase
	topic          string
	defaultBaseURL string
}

// New creates a new event consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Group == nil {
		return nil, fmt.Errorf("consumer group is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	return &Consumer{
		l:              cfg.Logger,
		group:          cfg.Group,
		uc:             cfg.UseCase,
		topic:          cfg.Topic,
		defaultBaseURL: cfg.DefaultBaseURL,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close event consumer group: %w", err)
	}
	return nil
}
