package solr

import (
	"context"
	"strings"

	pkghttp "indexing-srv/pkg/http"
)

// ISolr writes to the search index update endpoint.
// Implementations are safe for concurrent use.
type ISolr interface {
	// Delete removes the document keyed on id.
	Delete(ctx context.Context, id string) error
	// Update posts a transformed document body as is.
	Update(ctx context.Context, doc []byte) error
}

// NewSolr creates a search index client. Updates are sent once without retries.
func NewSolr(cfg Config) ISolr {
	c := pkghttp.DefaultConfig()
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	if cfg.CommitWithin <= 0 {
		cfg.CommitWithin = DefaultCommitWithin
	}
	return &solrImpl{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		commitWithin: cfg.CommitWithin,
		httpClient:   pkghttp.NewClient(c),
	}
}
