package consumer

import (
	"context"
	"database/sql"

	"indexing-srv/config"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
	"indexing-srv/pkg/redis"
)

// ConsumerServer runs the indexing pipeline
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient     redis.IRedis
	postgresDB      *sql.DB
	rabbitConn      pkgRabbitMQ.IRabbitMQ
	outcomeProducer pkgKafka.IProducer

	// Kafka event source (event.source = kafka)
	eventGroup    pkgKafka.IConsumer
	eventProducer pkgKafka.IProducer
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient     redis.IRedis
	PostgresDB      *sql.DB
	RabbitConn      pkgRabbitMQ.IRabbitMQ
	OutcomeProducer pkgKafka.IProducer

	// Kafka event source (event.source = kafka)
	EventGroup    pkgKafka.IConsumer
	EventProducer pkgKafka.IProducer
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes the pipeline, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	p, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	metrics := srv.startMetrics(ctx)
	defer srv.stopMetrics(metrics)

	srv.startPipeline(ctx, p)

	if err := srv.startConsumers(ctx, p); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopPipeline(ctx, p)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, p)
	srv.stopPipeline(ctx, p)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
