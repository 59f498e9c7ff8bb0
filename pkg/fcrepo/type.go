package fcrepo

import (
	"time"

	pkghttp "indexing-srv/pkg/http"
)

// Config holds the repository client configuration.
type Config struct {
	Timeout time.Duration
	Retries int
}

type fcrepoImpl struct {
	httpClient pkghttp.IClient
}
