package tryagain

import (
	"context"

	"github.com/tryagain-go/tryagain/outcome"
	"github.com/tryagain-go/tryagain/retry"
)

// Schedule is the finite delay sequence accepted by every entry point.
type Schedule = retry.Schedule

// Run is a pending blocking retry session; supply a schedule to start it.
type Run[T outcome.Retryable] struct {
	op retry.Operation[T]
}

// Retry prepares a blocking retry session for op.
func Retry[T outcome.Retryable](op func() T) Run[T] {
	return Run[T]{op: op}
}

// DelayedBy runs the session with the default executor and observer,
// waiting out each element of schedule between attempts.
func (r Run[T]) DelayedBy(schedule Schedule) T {
	return retry.Do(r.op, schedule)
}

// WithOptions runs the session with an explicit executor and observer.
func (r Run[T]) WithOptions(opts retry.Options) T {
	return retry.DoWithOptions(r.op, opts)
}

// CtxRun is a pending context-aware retry session.
type CtxRun[T outcome.Retryable] struct {
	op retry.ContextOperation[T]
}

// RetryCtx prepares a context-aware retry session for op.
func RetryCtx[T outcome.Retryable](op func(ctx context.Context) T) CtxRun[T] {
	return CtxRun[T]{op: op}
}

// DelayedBy runs the session with the default context executor and
// observer. A wait cut short by ctx abandons the session and returns the
// last outcome.
func (r CtxRun[T]) DelayedBy(ctx context.Context, schedule Schedule) T {
	return retry.DoCtx(ctx, r.op, schedule)
}

// WithOptions runs the session with an explicit executor and observer.
func (r CtxRun[T]) WithOptions(ctx context.Context, opts retry.CtxOptions) T {
	return retry.DoCtxWithOptions(ctx, r.op, opts)
}
