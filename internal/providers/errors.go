package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable signals that no usable provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrNotFound signals that the upstream has no record for the identifier.
var ErrNotFound = errors.New("not found upstream")

// RateLimitError captures rate limit responses from upstream APIs.
type RateLimitError struct {
	Upstream   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
