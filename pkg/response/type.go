package response

import "insights-srv/pkg/errors"

// Resp is the envelope every JSON endpoint answers with. ErrorCode zero
// means success.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping pairs domain sentinels with the HTTP error to render for them.
type ErrorMapping map[error]*errors.HTTPError
