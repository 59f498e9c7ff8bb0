package resource

import (
	"fmt"
	"net/url"
	"strings"

	"indexing-srv/internal/model"
)

// Resolver turns raw request or child URIs into resource descriptors.
type Resolver struct {
	prefix  string
	baseURL string
	// scheme and host are set for resolvers built from a base URL; absolute
	// URIs must then point at the same origin.
	scheme string
	host   string
}

// New creates a resolver stripping prefix from URI paths and stamping baseURL
// on every descriptor.
func New(prefix, baseURL string) (Resolver, error) {
	if baseURL == "" {
		return Resolver{}, fmt.Errorf("%w: empty base url", model.ErrConfiguration)
	}
	return Resolver{prefix: strings.TrimSuffix(prefix, "/"), baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// NewFromBaseURL creates a resolver whose prefix is the path of baseURL.
// Used for child URIs read from repository representations.
func NewFromBaseURL(baseURL string) (Resolver, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return Resolver{}, fmt.Errorf("%w: invalid base url %q: %v", model.ErrConfiguration, baseURL, err)
	}
	r, err := New(u.Path, baseURL)
	if err != nil {
		return Resolver{}, err
	}
	r.scheme, r.host = u.Scheme, u.Host
	return r, nil
}

// Resolve derives the descriptor for rawURI. The identifier is the URI path
// with the prefix removed; query and fragment are dropped.
func (r Resolver) Resolve(rawURI string) (model.ResourceDescriptor, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return model.ResourceDescriptor{}, fmt.Errorf("%w: invalid uri %q: %v", model.ErrConfiguration, rawURI, err)
	}

	if r.host != "" && u.IsAbs() && (!strings.EqualFold(u.Scheme, r.scheme) || !strings.EqualFold(u.Host, r.host)) {
		return model.ResourceDescriptor{}, fmt.Errorf("%w: uri %q is outside %s://%s", model.ErrConfiguration, rawURI, r.scheme, r.host)
	}

	path := u.Path
	if !r.hasPrefix(path) {
		return model.ResourceDescriptor{}, fmt.Errorf("%w: path %q does not start with prefix %q", model.ErrConfiguration, path, r.prefix)
	}

	d := model.ResourceDescriptor{
		Identifier: strings.TrimPrefix(path, r.prefix),
		BaseURL:    r.baseURL,
	}
	if err := model.ValidateIRI(d.URI()); err != nil {
		return model.ResourceDescriptor{}, fmt.Errorf("%w: %w", model.ErrConfiguration, err)
	}
	return d, nil
}

// hasPrefix matches whole path segments only.
func (r Resolver) hasPrefix(path string) bool {
	if !strings.HasPrefix(path, r.prefix) {
		return false
	}
	return len(path) == len(r.prefix) || path[len(r.prefix)] == '/'
}

// Prefix returns the configured prefix.
func (r Resolver) Prefix() string {
	return r.prefix
}
