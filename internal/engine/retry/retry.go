// Package retry runs fallible operations against a fixed attempt budget.
package retry

import (
	"context"
	"time"

	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultAttempts is the number of guarded attempts before the final call.
	DefaultAttempts = 5
	// DefaultDelay is long enough to keep the catalog API from rate limiting bursts.
	DefaultDelay = 5 * time.Second
)

// Policy is a fixed-delay retry budget.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy returns the policy used for catalog requests.
func DefaultPolicy() Policy {
	return Policy{Attempts: DefaultAttempts, Delay: DefaultDelay}
}

// Do calls op up to p.Attempts times, logging each failure and sleeping p.Delay after it.
// When every guarded attempt fails it makes one final call and returns that result as is,
// so op runs at most p.Attempts+1 times. There is no backoff growth and no error classification.
//
// The sleep ends early if ctx is cancelled, in which case the context error is returned.
func Do[T any](ctx context.Context, log ports.Logger, p Policy, op func(context.Context) (T, error)) (T, error) {
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}

		log.Error(zerr.Wrap(err, "attempt failed, retrying"), "attempt", attempt, "max_attempts", p.Attempts)

		if err := sleep(ctx, p.Delay); err != nil {
			var zero T
			return zero, err
		}
	}

	return op(ctx)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
