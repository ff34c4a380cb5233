// Package executor provides the mechanisms that perform the wait between
// retry attempts. The retry loop depends only on the two small contracts
// here; alternative implementations (fake clocks in tests, rate-limited
// waits) plug in through the options of the retry entry points.
package executor

import (
	"context"
	"time"
)

// Executor performs one wait, blocking the calling goroutine for at least
// the given duration. Implementations must not transform the duration.
type Executor interface {
	Delay(d time.Duration)
}

// ContextExecutor performs one wait that can be cut short by the context.
// It returns nil after the full duration has elapsed, or ctx.Err() if the
// context was done first.
type ContextExecutor interface {
	Delay(ctx context.Context, d time.Duration) error
}

// ThreadSleep blocks the calling goroutine with time.Sleep.
type ThreadSleep struct{}

func (ThreadSleep) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// TimerSleep parks the calling goroutine on a timer while honoring context
// cancellation. It is the default wait mechanism for the context-aware
// retry entry points.
type TimerSleep struct{}

func (TimerSleep) Delay(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)

	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C: // drain any pending tick so the channel doesn't retain value
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
