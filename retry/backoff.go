// Package retry provides exponential backoff for operations that may fail
// transiently, such as connecting to a database that is still starting.
package retry

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Strategy defines the retry behavior.
//
// The delay before attempt n+1 follows:
// delay = min(BaseDelay * ExponentialBase^(n-1), MaxDelay)
//
// Example with defaults (500ms base, 2.0 exponential, 10s max):
//
//	Attempt 1: immediately
//	Attempt 2: after 500ms
//	Attempt 3: after 1s
//	Attempt 4: after 2s
//	Attempt 5: after 4s
type Strategy struct {
	MaxAttempts     int           // Total attempts, including the first one
	BaseDelay       time.Duration // Delay after the first failure
	MaxDelay        time.Duration // Delay cap
	ExponentialBase float64       // Backoff multiplier (e.g., 2.0 for doubling)
}

// DefaultStrategy returns 5 attempts with 500ms→10s exponential backoff.
func DefaultStrategy() Strategy {
	return Strategy{
		MaxAttempts:     5,
		BaseDelay:       500 * time.Millisecond,
		MaxDelay:        10 * time.Second,
		ExponentialBase: 2.0,
	}
}

// Delay returns the wait after the given failed attempt (1-based).
func (s Strategy) Delay(failedAttempt int) time.Duration {
	if failedAttempt <= 1 {
		return s.BaseDelay
	}

	delay := float64(s.BaseDelay) * math.Pow(s.ExponentialBase, float64(failedAttempt-1))
	if delay > float64(s.MaxDelay) {
		return s.MaxDelay
	}
	return time.Duration(delay)
}

// IsRetryable reports whether another attempt is allowed after attemptCount attempts.
func (s Strategy) IsRetryable(attemptCount int) bool {
	return attemptCount < s.MaxAttempts
}

// Schedule returns a human-readable description of the retry schedule.
func (s Strategy) Schedule() string {
	var b strings.Builder
	b.WriteString("Retry Schedule:\n")
	b.WriteString("  Attempt 1: immediately\n")
	for i := 2; i <= s.MaxAttempts; i++ {
		fmt.Fprintf(&b, "  Attempt %d: after %v\n", i, s.Delay(i-1))
	}
	return b.String()
}

// Do calls fn until it succeeds, the attempts are exhausted or ctx is done.
// onRetry, if not nil, is called before each wait. The last error from fn is
// returned when all attempts fail.
func Do(ctx context.Context, s Strategy, fn func(ctx context.Context) error, onRetry func(attempt int, delay time.Duration, err error)) error {
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if !s.IsRetryable(attempt) {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		delay := s.Delay(attempt)
		if onRetry != nil {
			onRetry(attempt, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), err)
		case <-timer.C:
		}
	}
}
