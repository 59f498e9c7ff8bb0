package http

import (
	"github.com/gin-gonic/gin"

	"indexing-srv/pkg/response"
)

// ListFailed - Handler for GET /internal/failures
func (h *handler) ListFailed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListFailedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListFailed(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "outcome.delivery.http.ListFailed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListFailedResp(output))
}

// RetryFailed - Handler for POST /internal/failures/retry
func (h *handler) RetryFailed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRetryFailedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RetryFailed(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "outcome.delivery.http.RetryFailed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRetryFailedResp(output))
}
