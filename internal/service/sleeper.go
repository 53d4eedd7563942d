package service

import (
	"context"
	"time"
)

// Sleeper paces the interview's bot turns. The controller only ever waits
// through it, so tests can substitute virtual time.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realSleeper struct{}

// NewSleeper returns a wall-clock Sleeper that honors context cancellation.
func NewSleeper() Sleeper {
	return realSleeper{}
}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
