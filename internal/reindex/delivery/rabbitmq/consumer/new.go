package consumer

import (
	"fmt"

	"indexing-srv/internal/reindex"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// Config holds the configuration for the reindex consumer
type Config struct {
	Logger   log.Logger
	Conn     pkgRabbitMQ.IRabbitMQ
	UseCase  reindex.UseCase
	Queue    string
	Prefetch int
}

// Consumer consumes walk requests from RabbitMQ
type Consumer struct {
	l        log.Logger
	conn     pkgRabbitMQ.IRabbitMQ
	uc       reindex.UseCase
	queue    string
	prefetch int
}

// New creates a new reindex consumer
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
		l:        cfg.Logger,
		conn:     cfg.Conn,
		uc:       cfg.UseCase,
		queue:    cfg.Queue,
		prefetch: cfg.Prefetch,
	}, nil
}
