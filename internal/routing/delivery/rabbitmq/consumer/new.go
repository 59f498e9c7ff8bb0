package consumer

import (
	"fmt"

	"indexing-srv/internal/routing"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// Config holds the configuration for the event consumer
type Config struct {
	Logger   log.Logger
	Conn     pkgRabbitMQ.IRabbitMQ
	UseCase  routing.UseCase
	Exchange string
	Queue    string
	Prefetch int
	// DefaultBaseURL is used for events without a base URL header.
	DefaultBaseURL string
}

// Consumer consumes repository change events from RabbitMQ
type Consumer struct {
	l              log.Logger
	conn           pkgRabbitMQ.IRabbitMQ
	uc             routing.UseCase
	exchange       string
	queue          string
	prefetch       int
	defaultBaseURL string
}

// New creates a new event consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Queue == "" {
		return nil, fmt.Errorf("queue is required")
	}

	return &Consumer{
		l:              cfg.Logger,
		conn:           cfg.Conn,
		uc:             cfg.UseCase,
		exchange:       cfg.Exchange,
		queue:          cfg.Queue,
		prefetch:       cfg.Prefetch,
		defaultBaseURL: cfg.DefaultBaseURL,
	}, nil
}
