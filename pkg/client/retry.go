package client

import (
	"context"
	"log/slog"
	"time"
)

// RetryPolicy controls Retry. Delays grow as BaseDelay * 2^attempt with no
// jitter.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration

	// Sleep waits for d or until ctx is done; nil uses a timer
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy retries twice after 1s and 2s
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, BaseDelay: time.Second}
}

// Retry calls fn until it succeeds or the policy is exhausted, returning
// the last error
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	sleep := policy.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var (
		result T
		err    error
	)
	for attempt := 0; ; attempt++ {
		result, err = fn(ctx)
		if err == nil || attempt >= policy.MaxRetries {
			return result, err
		}

		delay := policy.BaseDelay << attempt
		slog.Debug("retrying request", "attempt", attempt+1, "delay", delay, "error", err)
		if serr := sleep(ctx, delay); serr != nil {
			return result, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
