package retry

import (
	"log"
	"sync"

	"github.com/tryagain-go/tryagain/executor"
	"github.com/tryagain-go/tryagain/observe"
)

// DefaultExecutor returns the wait mechanism used by the blocking entry
// points when none is supplied.
func DefaultExecutor() executor.Executor {
	return executor.ThreadSleep{}
}

// DefaultContextExecutor returns the wait mechanism used by the
// context-aware entry points when none is supplied.
func DefaultContextExecutor() executor.ContextExecutor {
	return executor.TimerSleep{}
}

var (
	globalObs  observe.Observer
	globalOnce sync.Once
)

// DefaultObserver returns the shared, lazy-initialized default observer.
// Unless SetDefaultObserver has been called it emits structured zap events
// through the process-global logger, which is a nop until the application
// installs one.
func DefaultObserver() observe.Observer {
	globalOnce.Do(func() {
		if globalObs == nil {
			globalObs = observe.NewZapObserver(nil)
		}
	})
	return globalObs
}

// SetDefaultObserver configures the default observer.
// It must be called before the first retry session runs (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetDefaultObserver(obs observe.Observer) {
	if obs == nil {
		return
	}

	// Check if already initialized to provide a warning.
	// Note: This check is not strictly race-free vs DefaultObserver, but sufficient for startup-time verification.
	if globalObs != nil {
		log.Printf("retry: SetDefaultObserver called after default observer already initialized; ignoring.")
		return
	}

	globalOnce.Do(func() {
		globalObs = obs
	})
}
