package fn

import (
	"context"
	"fmt"
	"time"
)

// Default retry backoff bounds.
const (
	DefaultBackoffMin = 10 * time.Millisecond
	DefaultBackoffMax = time.Second
)

// Retry calls f up to attempts times, sleeping with exponential backoff
// between tries: backoffMin doubles after each failure up to backoffMax.
// It returns nil on the first success, the last error when every attempt
// fails, or ctx.Err() if the context is cancelled while waiting.
func Retry(ctx context.Context, attempts int, backoffMin, backoffMax time.Duration, f func(ctx context.Context) error) error {
	if attempts < 1 {
		return fmt.Errorf("fn: retry attempts must be >= 1, got %d", attempts)
	}
	if backoffMin <= 0 {
		backoffMin = DefaultBackoffMin
	}
	if backoffMax < backoffMin {
		backoffMax = backoffMin
	}

	var lastErr error
	backoff := backoffMin

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > backoffMax {
				backoff = backoffMax
			}
		}

		if lastErr = f(ctx); lastErr == nil {
			return nil
		}
	}

	return lastErr
}
