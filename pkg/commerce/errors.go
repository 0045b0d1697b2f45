package commerce

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable marks timeout/connection failures and exhausted
// retries against a backend service.
var ErrServiceUnavailable = errors.New("commerce service unavailable")

// CallError carries the URL that failed so handlers can surface it.
type CallError struct {
	URL string
	Err error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("commerce call %s: %v", e.URL, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
