package http

import (
	"github.com/gin-gonic/gin"

	"indexing-srv/internal/middleware"
	"indexing-srv/internal/reindex"
	"indexing-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Trigger(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l      log.Logger
	uc     reindex.UseCase
	prefix string
}

// New creates a new HTTP handler serving reindex requests under prefix
func New(l log.Logger, uc reindex.UseCase, prefix string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		prefix: prefix,
	}
}
