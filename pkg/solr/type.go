package solr

import (
	"time"

	pkghttp "indexing-srv/pkg/http"
)

// Config holds the search index configuration.
type Config struct {
	BaseURL      string
	CommitWithin int
	Timeout      time.Duration
}

// DeleteRequest is a delete-by-id update.
type DeleteRequest struct {
	Delete DeleteCommand `json:"delete"`
}

// DeleteCommand identifies the document to remove.
type DeleteCommand struct {
	ID           string `json:"id"`
	CommitWithin string `json:"commitWithin"`
}

type solrImpl struct {
	baseURL      string
	commitWithin int
	httpClient   pkghttp.IClient
}
