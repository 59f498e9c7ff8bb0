package http

import (
	"time"

	"indexing-srv/internal/outcome"
	"indexing-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type listFailedReq struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

func (r listFailedReq) toInput() outcome.ListFailedInput {
	return outcome.ListFailedInput{Paginate: paginator.PaginateQuery{Page: r.Page, Limit: r.Limit}}
}

type retryFailedReq struct {
	Limit int `json:"limit" binding:"omitempty,min=1,max=1000"`
}

func (r retryFailedReq) toInput() outcome.RetryFailedInput {
	return outcome.RetryFailedInput{Limit: r.Limit}
}

// =====================================================
// Response DTOs
// =====================================================

type failureResp struct {
	ID           string    `json:"id"`
	Route        string    `json:"route"`
	Branch       string    `json:"branch"`
	Identifier   string    `json:"identifier"`
	BaseURL      string    `json:"base_url"`
	EventType    string    `json:"event_type,omitempty"`
	ErrorMessage string    `json:"error_message"`
	RetryCount   int       `json:"retry_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type listFailedResp struct {
	Failures  []failureResp               `json:"failures"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type retryFailedResp struct {
	TotalRetried int   `json:"total_retried"`
	Republished  int   `json:"republished"`
	Failed       int   `json:"failed"`
	DurationMs   int64 `json:"duration_ms"`
}

func (h *handler) newListFailedResp(o outcome.ListFailedOutput) listFailedResp {
	resp := listFailedResp{
		Failures:  make([]failureResp, len(o.Failures)),
		Paginator: o.Paginator.ToResponse(),
	}
	for i, f := range o.Failures {
		resp.Failures[i] = failureResp{
			ID:           f.ID,
			Route:        f.Route,
			Branch:       f.Branch,
			Identifier:   f.Identifier,
			BaseURL:      f.BaseURL,
			EventType:    f.EventType,
			ErrorMessage: f.ErrorMessage,
			RetryCount:   f.RetryCount,
			CreatedAt:    f.CreatedAt,
		}
	}
	return resp
}

func (h *handler) newRetryFailedResp(o outcome.RetryFailedOutput) retryFailedResp {
	return retryFailedResp{
		TotalRetried: o.TotalRetried,
		Republished:  o.Republished,
		Failed:       o.Failed,
		DurationMs:   o.Duration.Milliseconds(),
	}
}
