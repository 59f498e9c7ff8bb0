package fcrepo

import (
	"context"
	"fmt"
	"strings"
)

// GetRDF implements IFcrepo.
func (f *fcrepoImpl) GetRDF(ctx context.Context, uri string) ([]byte, error) {
	return f.get(ctx, uri, map[string]string{
		"Accept": MediaTypeRDFXML,
		"Prefer": PreferOmitContainment,
	})
}

// GetNTriples implements IFcrepo.
func (f *fcrepoImpl) GetNTriples(ctx context.Context, uri string) ([]byte, error) {
	return f.get(ctx, uri, map[string]string{
		"Accept": MediaTypeNTriples,
		"Prefer": PreferOmitContainment,
	})
}

// GetContainment implements IFcrepo.
func (f *fcrepoImpl) GetContainment(ctx context.Context, uri string) ([]byte, error) {
	return f.get(ctx, uri, map[string]string{
		"Accept": MediaTypeRDFXML,
		"Prefer": PreferContainmentOnly,
	})
}

// GetTransform implements IFcrepo.
func (f *fcrepoImpl) GetTransform(ctx context.Context, uri, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("fcrepo: transform name is required")
	}
	return f.get(ctx, TransformURL(uri, name), nil)
}

// TransformURL returns the endpoint rendering uri through the named transform.
func TransformURL(uri, name string) string {
	return strings.TrimSuffix(uri, "/") + transformPath + name
}

func (f *fcrepoImpl) get(ctx context.Context, uri string, headers map[string]string) ([]byte, error) {
	body, statusCode, err := f.httpClient.Get(ctx, uri, headers)
	if err != nil {
		return nil, fmt.Errorf("fcrepo: GET %s: %w", uri, err)
	}
	if statusCode < 200 || statusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUnexpectedStatus, uri, statusCode)
	}
	return body, nil
}
