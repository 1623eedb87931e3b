package table

import (
	"context"
	"fmt"
	"time"
)

// Clock suspends a philosopher for a period of simulated time.
type Clock interface {
	// Sleep blocks for d or until ctx is done. It returns a non-nil error if
	// the sleep was cut short.
	Sleep(ctx context.Context, d time.Duration) error
}

// WallClock sleeps in real time.
type WallClock struct{}

// Sleep implements Clock.
func (WallClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
}
