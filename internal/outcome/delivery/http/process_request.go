package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListFailedReq(c *gin.Context) (listFailedReq, error) {
	var req listFailedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "outcome.delivery.http.processListFailedReq: ShouldBindQuery failed: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

func (h *handler) processRetryFailedReq(c *gin.Context) (retryFailedReq, error) {
	var req retryFailedReq
	// empty body means default limit
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "outcome.delivery.http.processRetryFailedReq: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
