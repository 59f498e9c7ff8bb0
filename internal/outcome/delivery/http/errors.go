package http

import (
	"errors"

	"indexing-srv/internal/outcome"
	pkgErrors "indexing-srv/pkg/errors"
)

var (
	errWrongQuery       = pkgErrors.NewHTTPError(40001, "Wrong query")
	errWrongBody        = pkgErrors.NewHTTPError(40002, "Wrong body")
	errListFailed       = pkgErrors.NewHTTPError(50001, "Failed to list failures")
	errEventBusDisabled = pkgErrors.NewHTTPError(50301, "Event bus not configured")
)

func (h handler) mapError(err error) error {
	switch {
	case errors.Is(err, outcome.ErrListFailed):
		return errListFailed
	case errors.Is(err, outcome.ErrEventBusNotEnabled):
		return errEventBusDisabled
	default:
		return err
	}
}
