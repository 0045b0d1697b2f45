package commerce

import "time"

const (
	// GetTimeout bounds read-only lookups.
	GetTimeout = 4 * time.Second

	// PostTimeout bounds mutating calls.
	PostTimeout = 5 * time.Second

	// MaxRetries is the total number of attempts for idempotent calls.
	MaxRetries = 3

	// RetryBackoff is the base delay between attempts, doubled per attempt.
	RetryBackoff = 500 * time.Millisecond
)

// retryableStatus reports whether a response status warrants a retry.
func retryableStatus(code int) bool {
	switch code {
	case 500, 502, 503, 504:
		return true
	}
	return false
}
