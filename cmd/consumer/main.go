package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"indexing-srv/config"
	"indexing-srv/config/kafka"
	"indexing-srv/config/postgre"
	"indexing-srv/config/rabbitmq"
	"indexing-srv/config/redis"
	"indexing-srv/internal/consumer"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Indexing Consumer Service...")

	// Kafka Producer (outcome stream)
	outcomeProducer, err := kafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.Disconnect()
	logger.Info(ctx, "Kafka producer initialized")

	// Kafka event source (optional)
	var (
		eventGroup    pkgKafka.IConsumer
		eventProducer pkgKafka.IProducer
	)
	if cfg.Event.Source == config.EventSourceKafka {
		eventGroup, err = kafka.ConnectConsumer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka consumer: %v", err)
			return
		}
		eventProducer, err = kafka.ConnectEventProducer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka event producer: %v", err)
			return
		}
		logger.Infof(ctx, "Kafka event source initialized for %s", cfg.Kafka.EventTopic)
	}

	// RabbitMQ
	rabbitConn, err := rabbitmq.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer rabbitmq.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(context.Background(), postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:          logger,
		Config:          cfg,
		RedisClient:     redisClient,
		PostgresDB:      postgresDB,
		RabbitConn:      rabbitConn,
		OutcomeProducer: outcomeProducer,
		EventGroup:      eventGroup,
		EventProducer:   eventProducer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
