package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a failure as transient. Registry clients wrap
// connection errors and 5xx responses with it; anything else (404s,
// malformed metadata, decode failures) stays permanent and surfaces on the
// first attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn until it succeeds, fails permanently, or attempts are
// exhausted. The delay between attempts doubles each time, and waiting
// respects ctx: cancellation during a backoff window returns ctx.Err().
// On exhaustion the last error is returned.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}

// RetryWithBackoff runs fn with the retry policy used for metadata
// fetches: 3 attempts starting at a 1 second delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
