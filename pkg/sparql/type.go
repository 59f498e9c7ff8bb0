package sparql

import (
	"time"

	pkghttp "indexing-srv/pkg/http"
)

// Config holds the SPARQL update endpoint configuration.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

type sparqlImpl struct {
	endpoint   string
	httpClient pkghttp.IClient
}
