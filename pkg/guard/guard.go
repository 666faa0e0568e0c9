// Package guard bounds backend round trips with context deadlines and turns
// deadline expiry into a distinct error, so a hanging backend surfaces as a
// diagnosable failure instead of a stuck request.
package guard

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDeadline marks a backend call that ran out of its wall-clock window.
var ErrDeadline = errors.New("backend deadline exceeded")

// Run executes fn under a deadline of d. Deadline expiry, whether observed
// by fn or by the context itself, is reported as ErrDeadline with the
// operation name attached.
func Run(ctx context.Context, d time.Duration, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err := fn(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s did not answer within %s: %w", op, d, ErrDeadline)
	}
	return err
}
