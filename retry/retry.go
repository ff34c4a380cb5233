// Package retry runs a fallible operation until its outcome no longer
// needs a retry or the delay schedule runs out.
//
// The retry bound is the length of the schedule: a schedule built with
// Take(n) permits n retries, so the operation runs at most n+1 times. There
// is no separate attempt ceiling. On exhaustion the caller receives the
// last outcome produced, never a synthetic error.
package retry

import (
	"context"
	"time"

	"github.com/tryagain-go/tryagain/observe"
	"github.com/tryagain-go/tryagain/outcome"
	"github.com/tryagain-go/tryagain/seq"
)

// Schedule is the sequence of waits a retry session consumes. Only
// sequences statically known to be finite are accepted; bound an unbounded
// strategy with Take before passing it here.
type Schedule = seq.Seq[time.Duration, seq.Finite]

// Operation is one unit of retriable work.
type Operation[T outcome.Retryable] func() T

// ContextOperation is one unit of retriable work that observes a context.
// The context it receives carries observe.AttemptInfo for the current
// attempt.
type ContextOperation[T outcome.Retryable] func(ctx context.Context) T

// Do runs op until its outcome reports no retry is needed or schedule is
// exhausted, blocking the calling goroutine for each wait. It returns the
// final outcome.
func Do[T outcome.Retryable](op Operation[T], schedule Schedule) T {
	return DoWithOptions(op, Options{Schedule: schedule})
}

// DoWithOptions is Do with an explicit executor and observer.
func DoWithOptions[T outcome.Retryable](op Operation[T], opts Options) T {
	opts = opts.withDefaults()
	wait := func(d time.Duration) bool {
		opts.Executor.Delay(d)
		return true
	}
	return run(func(int) T { return op() }, opts.Schedule, wait, opts.Observer)
}

// DoCtx runs op until its outcome reports no retry is needed, schedule is
// exhausted, or ctx is done during a wait. Cancellation abandons the
// session: the last outcome is returned and op is not invoked again.
func DoCtx[T outcome.Retryable](ctx context.Context, op ContextOperation[T], schedule Schedule) T {
	return DoCtxWithOptions(ctx, op, CtxOptions{Schedule: schedule})
}

// DoCtxWithOptions is DoCtx with an explicit executor and observer.
func DoCtxWithOptions[T outcome.Retryable](ctx context.Context, op ContextOperation[T], opts CtxOptions) T {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.withDefaults()
	invoke := func(attempt int) T {
		return op(observe.WithAttemptInfo(ctx, observe.AttemptInfo{Attempt: attempt}))
	}
	wait := func(d time.Duration) bool {
		return opts.Executor.Delay(ctx, d) == nil
	}
	return run(invoke, opts.Schedule, wait, opts.Observer)
}

// run is the single state machine behind every entry point. The blocking
// and context-aware variants differ only in the wait callback, so the loop
// itself cannot drift between them. wait returns false when the session
// must be abandoned mid-delay.
func run[T outcome.Retryable](invoke func(attempt int) T, schedule Schedule, wait func(time.Duration) bool, obs observe.Observer) T {
	tries := 1
	for {
		out := invoke(tries)
		if !out.NeedsRetry() {
			return out
		}
		d, ok := schedule.Next()
		if !ok {
			obs.OnExhausted(observe.AttemptRecord{Attempt: tries, Outcome: out})
			return out
		}
		obs.OnRetry(observe.AttemptRecord{Attempt: tries, Delay: d, Outcome: out})
		if !wait(d) {
			return out
		}
		tries++
	}
}
