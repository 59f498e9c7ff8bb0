package http

import (
	"errors"

	"indexing-srv/internal/reindex"
	pkgErrors "indexing-srv/pkg/errors"
)

var (
	errInvalidPath     = pkgErrors.NewHTTPError(40011, "Path is outside the reindex prefix")
	errTriggerFailed   = pkgErrors.NewHTTPError(50011, "Failed to start reindex")
	errReindexDisabled = pkgErrors.NewHTTPError(50311, "Reindex bus not configured")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reindex.ErrInvalidPath):
		return errInvalidPath
	case errors.Is(err, reindex.ErrPublisherNotEnabled):
		return errReindexDisabled
	case errors.Is(err, reindex.ErrTriggerFailed):
		return errTriggerFailed
	default:
		return err
	}
}
