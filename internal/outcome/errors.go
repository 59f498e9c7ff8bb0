package outcome

import "errors"

var (
	ErrListFailed         = errors.New("outcome: list failures failed")
	ErrEventBusNotEnabled = errors.New("outcome: event publisher not configured")
)
