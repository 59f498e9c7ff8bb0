package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorStatusCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{name: "bad request", code: 40001, want: http.StatusBadRequest},
		{name: "not found", code: 40401, want: http.StatusNotFound},
		{name: "bad gateway", code: 50201, want: http.StatusBadGateway},
		{name: "legacy short code", code: 404, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewHTTPError(tt.code, "msg")
			assert.Equal(t, tt.want, err.StatusCode())
			assert.Equal(t, "msg", err.Error())
		})
	}
}
