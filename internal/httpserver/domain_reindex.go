package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"indexing-srv/internal/middleware"
	"indexing-srv/internal/reindex"
	reindexHTTP "indexing-srv/internal/reindex/delivery/http"
	reindexProducer "indexing-srv/internal/reindex/delivery/rabbitmq/producer"
	reindexUsecase "indexing-srv/internal/reindex/usecase"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

func (srv HTTPServer) setupReindexDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(pkgRabbitMQ.QueueArgs{Name: srv.config.RabbitMQ.ReindexQueue, Durable: true}); err != nil {
		return err
	}

	producer := reindexProducer.New(srv.l, ch, srv.config.RabbitMQ.ReindexQueue)
	uc := reindexUsecase.New(srv.l, nil, nil, producer, nil, nil, nil, reindex.Config{
		ReindexPrefix: srv.config.API.ReindexPrefix,
		BaseURL:       srv.config.Repository.BaseURL,
	})

	handler := reindexHTTP.New(srv.l, uc, srv.config.API.ReindexPrefix)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Reindex domain registered under %s", srv.config.API.ReindexPrefix)
	return nil
}
