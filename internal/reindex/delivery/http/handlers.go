package http

import (
	"github.com/gin-gonic/gin"

	"indexing-srv/internal/reindex"
	"indexing-srv/pkg/response"
)

// Trigger - Handler for POST {reindex_prefix}/*path
func (h *handler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Trigger(ctx, reindex.TriggerInput{RequestPath: c.Request.URL.EscapedPath()})
	if err != nil {
		h.l.Errorf(ctx, "reindex.delivery.http.Trigger: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Accepted(c, h.newTriggerResp(output))
}
