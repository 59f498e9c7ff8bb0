package sparql

import "errors"

var (
	ErrUnexpectedStatus = errors.New("sparql: unexpected status")
	ErrInvalidIRI       = errors.New("sparql: invalid iri")
)
