package retry

import (
	"github.com/tryagain-go/tryagain/executor"
	"github.com/tryagain-go/tryagain/observe"
)

// Options configures a blocking retry session. Nil fields fall back to the
// package defaults.
type Options struct {
	// Schedule is the finite sequence of waits between attempts. The
	// zero value permits no retries.
	Schedule Schedule

	// Executor performs each wait. Defaults to executor.ThreadSleep.
	Executor executor.Executor

	// Observer receives per-retry diagnostics. Defaults to the package
	// default observer.
	Observer observe.Observer
}

func (o Options) withDefaults() Options {
	if o.Executor == nil {
		o.Executor = DefaultExecutor()
	}
	if o.Observer == nil {
		o.Observer = DefaultObserver()
	}
	return o
}

// CtxOptions configures a context-aware retry session. Nil fields fall back
// to the package defaults.
type CtxOptions struct {
	Schedule Schedule

	// Executor performs each wait. Defaults to executor.TimerSleep.
	Executor executor.ContextExecutor

	Observer observe.Observer
}

func (o CtxOptions) withDefaults() CtxOptions {
	if o.Executor == nil {
		o.Executor = DefaultContextExecutor()
	}
	if o.Observer == nil {
		o.Observer = DefaultObserver()
	}
	return o
}
