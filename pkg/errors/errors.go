package errors

import "fmt"

// HTTPError carries a status code alongside a user-facing message.
// Delivery layers map domain errors into these.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// StatusCode returns the HTTP status for err, or fallback when err is not an HTTPError.
func StatusCode(err error, fallback int) int {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.Code
	}
	return fallback
}
