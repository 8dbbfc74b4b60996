// Package clock provides the waits used by the sync loop.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return SleepUntilSignal(ctx, d, nil)
}

// SleepUntilSignal waits for d but returns early on signal or when ctx is
// done. A nil signal never fires. A non-positive d only
// reports the context state.
func SleepUntilSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
