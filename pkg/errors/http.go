package errors

import "net/http"

// HTTPError is an error that carries an application error code and a message
// safe to return to clients. The HTTP status is derived from the first three
// digits of Code (40401 -> 404); codes outside 10000..59999 map to 500.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status for this error.
func (e *HTTPError) StatusCode() int {
	if e.Code < 10000 || e.Code > 59999 {
		return http.StatusInternalServerError
	}
	return e.Code / 100
}
