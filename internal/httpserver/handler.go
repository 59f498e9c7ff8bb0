package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"indexing-srv/config"
	"indexing-srv/internal/middleware"
	"indexing-srv/internal/outcome"
	routingKafkaProducer "indexing-srv/internal/routing/delivery/kafka/producer"
	routingRabbitProducer "indexing-srv/internal/routing/delivery/rabbitmq/producer"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.config.InternalConfig.ServiceKeys)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	r := srv.gin.Group("")
	if err := srv.setupReindexDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup reindex domain: %w", err)
	}
	if err := srv.setupOutcomeDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup outcome domain: %w", err)
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// newEventPublisher returns the publisher failures are retried through,
// matching the configured event source.
func (srv HTTPServer) newEventPublisher() (outcome.EventPublisher, error) {
	if srv.config.Event.Source == config.EventSourceKafka {
		return routingKafkaProducer.New(srv.l, srv.eventProducer), nil
	}

	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return nil, err
	}
	if srv.config.RabbitMQ.EventExchange != "" {
		if err := ch.ExchangeDeclare(pkgRabbitMQ.ExchangeArgs{
			Name:    srv.config.RabbitMQ.EventExchange,
			Type:    pkgRabbitMQ.ExchangeTypeTopic,
			Durable: true,
		}); err != nil {
			return nil, err
		}
	}
	return routingRabbitProducer.New(srv.l, ch, srv.config.RabbitMQ.EventExchange, srv.config.RabbitMQ.EventQueue), nil
}
