package registry

import (
	"context"
	"time"
)

// withRetry runs op up to attempts times, doubling the wait after each retryable failure.
// op returns whether its error is worth retrying. The last error is returned on exhaustion.
func withRetry(
	ctx context.Context,
	attempts int,
	backoff time.Duration,
	op func(attempt int) (retry bool, err error),
) error {
	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := sleep(ctx, backoff*time.Duration(1<<(attempt-1))); err != nil {
				return err
			}
		}

		retry, err := op(attempt)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return lastErr
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
