package middleware

import (
	"indexing-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	serviceKeys map[string]string
}

// New creates the middleware set. serviceKeys maps service name to its key.
func New(l log.Logger, serviceKeys map[string]string) Middleware {
	return Middleware{
		l:           l,
		serviceKeys: serviceKeys,
	}
}
