package http

import (
	"github.com/gin-gonic/gin"

	"indexing-srv/internal/middleware"
	"indexing-srv/internal/outcome"
	"indexing-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	ListFailed(c *gin.Context)
	RetryFailed(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l  log.Logger
	uc outcome.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc outcome.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
