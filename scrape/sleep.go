package scrape

import (
	"context"
	"time"
)

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the SleepFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
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
