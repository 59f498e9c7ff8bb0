package main

import (
	"context"
	"fmt"

	"indexing-srv/config"
	configKafka "indexing-srv/config/kafka"
	configPostgre "indexing-srv/config/postgre"
	configRabbitMQ "indexing-srv/config/rabbitmq"
	"indexing-srv/internal/httpserver"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize RabbitMQ (reindex requests, failure retries)
	rabbitConn, err := configRabbitMQ.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connected successfully")

	// 5. Initialize Kafka event producer (only when events come from Kafka)
	var eventProducer pkgKafka.IProducer
	if cfg.Event.Source == config.EventSourceKafka {
		eventProducer, err = configKafka.ConnectEventProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka: ", err)
			return
		}
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka event producer initialized for %s", cfg.Kafka.EventTopic)
	}

	// 6. Initialize HTTP server
	// Serves reindex triggers, failure listing and retries, health and metrics
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Database Configuration
		PostgresDB: postgresDB,

		// Messaging Configuration
		RabbitConn:    rabbitConn,
		EventProducer: eventProducer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
