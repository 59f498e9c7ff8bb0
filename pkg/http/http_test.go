package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPostRaw(t *testing.T) {
	var gotBody, gotType, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		gotHeader = r.Header.Get("X-Test")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig())
	body, status, err := c.PostRaw(context.Background(), srv.URL, []byte("update=x"), ContentTypeForm, map[string]string{"X-Test": "1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "update=x", gotBody)
	assert.Equal(t, ContentTypeForm, gotType)
	assert.Equal(t, "1", gotHeader)
}

func TestClientRetriesServerErrorsWithBody(t *testing.T) {
	var calls int32
	var lastBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		lastBody = string(b)
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 2, RetryWait: time.Millisecond})
	_, status, err := c.PostRaw(context.Background(), srv.URL, []byte(`{"a":"b"}`), ContentTypeJSON, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, `{"a":"b"}`, lastBody)
}

func TestClientReturnsLastServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 1, RetryWait: time.Millisecond})
	_, status, err := c.Get(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
}
