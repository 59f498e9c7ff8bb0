package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidIRI = errors.New("invalid iri")

// iriForbidden are the characters an IRI reference may not contain besides
// whitespace and control characters.
const iriForbidden = "<>\"{}|^`\\"

// ValidateIRI rejects strings that cannot be written verbatim between angle
// brackets in an RDF or SPARQL document.
func ValidateIRI(s string) error {
	for _, r := range s {
		if r <= 0x20 || r == 0x7f || strings.ContainsRune(iriForbidden, r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidIRI, s, r)
		}
	}
	return nil
}
