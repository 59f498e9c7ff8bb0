package fcrepo

import (
	"context"

	pkghttp "indexing-srv/pkg/http"
)

// IFcrepo reads resource representations from the repository.
// Implementations are safe for concurrent use.
type IFcrepo interface {
	// GetRDF returns the RDF/XML representation without containment or server managed triples.
	GetRDF(ctx context.Context, uri string) ([]byte, error)
	// GetNTriples returns the same view serialized as N-Triples.
	GetNTriples(ctx context.Context, uri string) ([]byte, error)
	// GetContainment returns the RDF/XML containment view.
	GetContainment(ctx context.Context, uri string) ([]byte, error)
	// GetTransform returns the resource rendered through the named transform.
	GetTransform(ctx context.Context, uri, name string) ([]byte, error)
}

// NewFcrepo creates a repository client.
func NewFcrepo(cfg Config) IFcrepo {
	c := pkghttp.DefaultConfig()
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	c.Retries = cfg.Retries
	return &fcrepoImpl{httpClient: pkghttp.NewClient(c)}
}
