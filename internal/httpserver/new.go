package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"indexing-srv/config"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Database Configuration
	postgresDB *sql.DB

	// Messaging Configuration
	rabbitConn    pkgRabbitMQ.IRabbitMQ
	eventProducer pkgKafka.IProducer
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Database Configuration
	PostgresDB *sql.DB

	// Messaging Configuration
	RabbitConn pkgRabbitMQ.IRabbitMQ
	// EventProducer republishes failures when events come from Kafka.
	EventProducer pkgKafka.IProducer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Messaging Configuration
		rabbitConn:    cfg.RabbitConn,
		eventProducer: cfg.EventProducer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Messaging Configuration
	if srv.rabbitConn == nil {
		return errors.New("rabbitConn is required")
	}
	if srv.config.Event.Source == config.EventSourceKafka && srv.eventProducer == nil {
		return errors.New("eventProducer is required when events come from kafka")
	}

	return nil
}
