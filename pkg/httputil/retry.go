package httputil

import (
	"context"
	"errors"
	"time"
)

// Defaults match the Steadfast API client's documented retry behavior.
const (
	DefaultMaxRetries = 3
	DefaultBackoff    = 300 * time.Millisecond
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (connection errors, timeouts) with this type
// so that [Policy.Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a *RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is wrapped with [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy describes how transient failures are retried.
//
// A request is tried once and then up to MaxRetries more times. The delay
// before retry n (counting from 0) is Base * 2^n, so the default policy
// waits 300ms, 600ms and 1.2s between its four attempts.
type Policy struct {
	MaxRetries int
	Base       time.Duration

	// Sleep replaces the real timer, mainly for tests. nil uses [Sleep].
	Sleep SleepFunc
}

// DefaultPolicy returns 3 retries with a 300ms base delay.
func DefaultPolicy() Policy {
	return Policy{MaxRetries: DefaultMaxRetries, Base: DefaultBackoff}
}

// Delay returns the wait before retry n (0-based).
func (p Policy) Delay(n int) time.Duration {
	if n < 0 {
		n = 0
	}
	return p.Base * time.Duration(uint64(1)<<uint(n))
}

// Start returns the retry state for a new request.
func (p Policy) Start() *Attempt {
	return &Attempt{policy: p}
}

// Retry runs fn until it succeeds, returns a non-retryable error, or the
// retry budget is spent. The last error is returned unchanged, so callers
// can still detect exhaustion with [IsRetryable].
func (p Policy) Retry(ctx context.Context, fn func(a *Attempt) error) error {
	a := p.Start()
	for {
		err := fn(a)
		if err == nil || !IsRetryable(err) || !a.CanRetry() {
			return err
		}
		if werr := a.Wait(ctx); werr != nil {
			return werr
		}
	}
}

// Attempt is the retry state of a single request:
// Sent -> (success | terminal error | retryable failure -> wait -> Sent).
type Attempt struct {
	policy Policy
	n      int
}

// Number returns the 1-based number of the current attempt.
func (a *Attempt) Number() int { return a.n + 1 }

// Total returns the maximum number of attempts.
func (a *Attempt) Total() int { return a.policy.MaxRetries + 1 }

// CanRetry reports whether another attempt is allowed after the current one.
func (a *Attempt) CanRetry() bool { return a.n < a.policy.MaxRetries }

// NextDelay returns the wait before the next attempt.
// Once the budget is spent it is the delay the schedule would apply next,
// which callers surface as a retry-after hint.
func (a *Attempt) NextDelay() time.Duration { return a.policy.Delay(a.n) }

// Wait sleeps for NextDelay and advances to the next attempt.
func (a *Attempt) Wait(ctx context.Context) error {
	sleep := a.policy.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	if err := sleep(ctx, a.NextDelay()); err != nil {
		return err
	}
	a.n++
	return nil
}

// Sleep waits for d, returning ctx.Err() if ctx is cancelled first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
