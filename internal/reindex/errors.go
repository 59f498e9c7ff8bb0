package reindex

import "errors"

var (
	ErrInvalidPath         = errors.New("reindex: path outside reindex prefix")
	ErrTriggerFailed       = errors.New("reindex: trigger failed")
	ErrPublisherNotEnabled = errors.New("reindex: publisher not configured")
	ErrWalkerNotEnabled    = errors.New("reindex: walker not configured")
)
