package errors

import "net/http"

// HTTPError is an error that maps directly onto an HTTP response: Code is
// echoed as the envelope error code and StatusCode selects the HTTP status.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError that reports code both as the HTTP
// status and the envelope error code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: code}
}

// NewUnauthorizedHTTPError returns the canonical 401 error.
func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}
