package offline

import (
	"context"
	"time"
)

// Drain flushes q, then again every interval, until q is empty or ctx ends.
// On ctx expiry it returns ctx.Err() and q keeps whatever was not delivered.
func Drain(ctx context.Context, q *Queue, handler Handler, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		q.Flush(ctx, handler)
		if q.Len() == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
