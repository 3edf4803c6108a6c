package client

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// Doer executes HTTP requests. *http.Client and *RetryDoer satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryDoer retries 429, 5xx gateway statuses and network errors with
// exponential backoff and full jitter. The final response is returned as is.
type RetryDoer struct {
	next       Doer
	log        *slog.Logger
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// NewRetryDoer wraps next. maxRetries counts attempts after the first one;
// zero disables retries.
func NewRetryDoer(log *slog.Logger, next Doer, maxRetries int, baseDelay, maxDelay time.Duration) *RetryDoer {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &RetryDoer{
		next:       next,
		log:        log.With("component", "retry_doer"),
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   maxDelay,
	}
}

func (d *RetryDoer) Do(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if err := req.Context().Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("reset request body: %w", err)
				}
				req.Body = body
			}

			delay := d.delay(attempt)
			d.log.WarnContext(req.Context(), "retrying request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("attempt", attempt),
				slog.Duration("wait", delay),
				slog.String("error", lastErr.Error()),
			)

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-req.Context().Done():
				timer.Stop()
				return nil, lastErr
			}
		}

		resp, err := d.next.Do(req)
		if err != nil {
			if req.Context().Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}

		if !retryableStatus(resp.StatusCode) || attempt == d.maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		resp.Body.Close()
		lastErr = fmt.Errorf("retryable status %d", resp.StatusCode)
	}

	return nil, lastErr
}

// delay is random(0, min(maxDelay, baseDelay*2^(attempt-1))), at least baseDelay/10.
func (d *RetryDoer) delay(attempt int) time.Duration {
	exp := float64(d.baseDelay) * math.Pow(2, float64(attempt-1))
	if exp > float64(d.maxDelay) {
		exp = float64(d.maxDelay)
	}
	jittered := time.Duration(rand.Float64() * exp)
	if floor := d.baseDelay / 10; jittered < floor {
		jittered = floor
	}
	return jittered
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
