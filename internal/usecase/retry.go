// internal/usecase/retry.go
package usecase

import (
	"context"
	"math/rand"
	"time"
)

// RetryPolicy governs repeated calls against a quota-limited backend.
// Delay doubles per attempt starting from BaseDelay, with optional jitter
// of up to one BaseDelay. Sleep is injectable so tests run on a fake clock.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      bool
	Sleep       func(time.Duration)
}

// Do runs fn until it succeeds, fails with a non-retryable error, or
// attempts run out. Only errors accepted by retryable are retried; the
// last error is returned when the budget is exhausted.
func (p RetryPolicy) Do(ctx context.Context, retryable func(error) bool, fn func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := p.BaseDelay << (attempt - 1)
			if p.Jitter && p.BaseDelay > 0 {
				delay += time.Duration(rand.Int63n(int64(p.BaseDelay)))
			}
			sleep(delay)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
	}
	return err
}
