package consumer

import (
	"fmt"

	"indexing-srv/config"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:               cfg.Logger,
		config:          cfg.Config,
		redisClient:     cfg.RedisClient,
		postgresDB:      cfg.PostgresDB,
		rabbitConn:      cfg.RabbitConn,
		outcomeProducer: cfg.OutcomeProducer,
		eventGroup:      cfg.EventGroup,
		eventProducer:   cfg.EventProducer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.rabbitConn == nil {
		return fmt.Errorf("rabbitmq connection is required")
	}
	if srv.outcomeProducer == nil {
		return fmt.Errorf("kafka outcome producer is required")
	}

	// Kafka event source
	if srv.config.Event.Source == config.EventSourceKafka {
		if srv.eventGroup == nil {
			return fmt.Errorf("kafka event consumer group is required")
		}
		if srv.eventProducer == nil {
			return fmt.Errorf("kafka event producer is required")
		}
	}

	return nil
}
