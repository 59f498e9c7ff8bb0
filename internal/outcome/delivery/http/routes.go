package http

import (
	"github.com/gin-gonic/gin"

	"indexing-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	internal := r.Group("/internal")
	internal.Use(mw.ServiceAuth())
	{
		internal.GET("/failures", h.ListFailed)
		internal.POST("/failures/retry", h.RetryFailed)
	}
}
