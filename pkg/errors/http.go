package errors

import "net/http"

// HTTPError is an error that carries the status and business code the
// delivery layer should answer with.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a bad-request HTTPError with the given business code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewHTTPErrorWithStatus creates an HTTPError answered with status.
func NewHTTPErrorWithStatus(status, code int, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

var (
	ErrInternalServerError = NewHTTPErrorWithStatus(http.StatusInternalServerError, 500, "Internal server error")
	ErrTooManyRequests     = NewHTTPErrorWithStatus(http.StatusTooManyRequests, 429, "Too many requests")
)
