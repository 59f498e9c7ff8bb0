package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(ctx, req, headers)
}

// PostRaw performs a POST request with a pre-encoded body.
func (c *clientImpl) PostRaw(ctx context.Context, url string, body []byte, contentType string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.do(ctx, req, headers)
}

func (c *clientImpl) do(ctx context.Context, req *http.Request, headers map[string]string) ([]byte, int, error) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	var resp *http.Response
	var err error
	for i := 0; i <= c.config.Retries; i++ {
		if i > 0 && req.GetBody != nil {
			if req.Body, err = req.GetBody(); err != nil {
				return nil, 0, fmt.Errorf("failed to rewind request body: %w", err)
			}
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			break
		}
		if i == c.config.Retries {
			break
		}
		if resp != nil {
			_ = resp.Body.Close()
			resp = nil
		}

		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-time.After(c.config.RetryWait):
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}
