package routing

import (
	"fmt"

	"indexing-srv/internal/model"
)

var (
	ErrMissingIdentifier = fmt.Errorf("%w: event has no identifier", model.ErrClassification)
	ErrInvalidIdentifier = fmt.Errorf("%w: event does not address a valid iri", model.ErrClassification)
	ErrUndecodable       = fmt.Errorf("%w: event message cannot be decoded", model.ErrClassification)
)
