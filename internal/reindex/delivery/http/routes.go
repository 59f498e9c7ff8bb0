package http

import (
	"github.com/gin-gonic/gin"

	"indexing-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group(h.prefix)
	g.Use(mw.ServiceAuth())
	{
		g.POST("/*path", h.Trigger)
	}
}
