package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"indexing-srv/internal/middleware"
	"indexing-srv/internal/outcome"
	outcomeHTTP "indexing-srv/internal/outcome/delivery/http"
	outcomePostgre "indexing-srv/internal/outcome/repository/postgre"
	outcomeUsecase "indexing-srv/internal/outcome/usecase"
)

// setupOutcomeDomain serves the failure table. The sink itself runs in the consumer.
func (srv HTTPServer) setupOutcomeDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	events, err := srv.newEventPublisher()
	if err != nil {
		return err
	}

	repo := outcomePostgre.New(srv.l, srv.postgresDB)
	uc := outcomeUsecase.New(srv.l, repo, nil, events, outcome.Config{BufferSize: srv.config.Outcome.BufferSize})

	handler := outcomeHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Outcome domain registered")
	return nil
}
