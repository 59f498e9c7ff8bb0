package sparql

import (
	"context"

	pkghttp "indexing-srv/pkg/http"
)

// ISparql sends SPARQL updates to a triplestore.
// Implementations are safe for concurrent use.
type ISparql interface {
	// Delete removes every triple whose subject is uri.
	Delete(ctx context.Context, uri string) error
	// Replace swaps the triples of uri for the given N-Triples.
	Replace(ctx context.Context, uri string, ntriples []byte) error
}

// NewSparql creates a triplestore client. Updates are sent once without retries.
func NewSparql(cfg Config) ISparql {
	c := pkghttp.DefaultConfig()
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	return &sparqlImpl{
		endpoint:   cfg.Endpoint,
		httpClient: pkghttp.NewClient(c),
	}
}
