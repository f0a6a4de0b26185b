package providers

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingTransport wraps a RoundTripper with retry/backoff behavior. Both
// upstream clients issue idempotent requests (GET, or POST with GetBody set),
// so a failed attempt can always be replayed.
type retryingTransport struct {
	next        http.RoundTripper
	logger      *slog.Logger
	recorder    *metrics.Recorder
	upstream    string
	maxAttempts int
	backoffFn   func(attempt int) time.Duration
}

// NewRetryingTransport wraps the transport with retries and per-attempt
// metrics. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingTransport(next http.RoundTripper, logger *slog.Logger, recorder *metrics.Recorder, upstream string, maxAttempts int, backoff time.Duration) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingTransport{
		next:        next,
		logger:      logger,
		recorder:    recorder,
		upstream:    upstream,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (t *retryingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		attemptReq, err := cloneRequest(req)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := t.next.RoundTrip(attemptReq)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			t.recorder.RecordUpstreamAttempt(t.upstream, elapsed, err)
			lastErr = err
		case resp.StatusCode == http.StatusTooManyRequests:
			retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
			t.recorder.RecordUpstreamAttempt(t.upstream, elapsed, &RateLimitError{Upstream: t.upstream, StatusCode: resp.StatusCode})
			t.recorder.RecordRateLimit(t.upstream, retryAfter)
			resp.Body.Close()
			lastErr = &RateLimitError{
				Upstream:   t.upstream,
				StatusCode: resp.StatusCode,
				RetryAfter: retryAfter,
			}
		case resp.StatusCode >= http.StatusInternalServerError:
			t.recorder.RecordUpstreamAttempt(t.upstream, elapsed, lastStatusError(resp.StatusCode))
			resp.Body.Close()
			lastErr = lastStatusError(resp.StatusCode)
		default:
			t.recorder.RecordUpstreamAttempt(t.upstream, elapsed, nil)
			return resp, nil
		}

		if attempt == t.maxAttempts {
			break
		}

		t.logWarn(req, "upstream retry", "attempt", attempt, "max_attempts", t.maxAttempts, "err", lastErr)

		delay := t.backoffFn(attempt)
		if rl, ok := AsRateLimitError(lastErr); ok && rl.RetryAfter > delay {
			delay = rl.RetryAfter
		}
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(delay):
		}
	}

	t.logWarn(req, "upstream request failed", "attempts", t.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (t *retryingTransport) logWarn(req *http.Request, msg string, args ...any) {
	logger := logging.FromContext(req.Context(), t.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldProvider, t.upstream), slog.String(logging.FieldPath, req.URL.Path))
		logger.Warn(msg, args...)
	}
}

// rateLimitedTransport enforces a minimum interval between upstream requests
// to stay inside quota.
type rateLimitedTransport struct {
	next     http.RoundTripper
	interval time.Duration

	mu       sync.Mutex
	lastCall time.Time
}

// NewRateLimitedTransport returns a transport that spaces calls by at least
// the given interval. Calls block until their slot arrives.
func NewRateLimitedTransport(next http.RoundTripper, interval time.Duration) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedTransport{next: next, interval: interval}
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	wait := t.reserve()
	if wait > 0 {
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}
	return t.next.RoundTrip(req)
}

func (t *rateLimitedTransport) reserve() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	next := t.lastCall.Add(t.interval)
	if next.Before(now) {
		next = now
	}
	t.lastCall = next
	return next.Sub(now)
}

func cloneRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}
	if req.GetBody == nil {
		// First attempt can reuse the original body; retries will fail fast.
		return req, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	return clone, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

type statusError int

func (e statusError) Error() string {
	return "upstream status " + strconv.Itoa(int(e))
}

func lastStatusError(code int) error {
	return statusError(code)
}
