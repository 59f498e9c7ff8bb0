package outcome

import (
	"time"

	"indexing-srv/internal/model"
	"indexing-srv/pkg/paginator"
)

// Config sizes the sink.
type Config struct {
	BufferSize int
}

// ListFailedInput is the input for ListFailed
type ListFailedInput struct {
	Paginate paginator.PaginateQuery
}

// ListFailedOutput is the output for ListFailed
type ListFailedOutput struct {
	Failures  []model.PropagationFailure
	Paginator paginator.Paginator
}

// RetryFailedInput is the input for RetryFailed
type RetryFailedInput struct {
	Limit int
}

// RetryFailedOutput is the output for RetryFailed
type RetryFailedOutput struct {
	TotalRetried int
	Republished  int
	Failed       int
	Duration     time.Duration
}
