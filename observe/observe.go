// Package observe reports the progress of a retry session. The retry loop
// emits one event per non-terminal retry and one when the delay schedule
// runs out; everything else (where the events go, how they are rendered)
// belongs to the observer implementation.
package observe

import "time"

// AttemptRecord describes one failed attempt.
type AttemptRecord struct {
	// Attempt is the 1-based number of the attempt that just failed.
	Attempt int

	// Delay is the wait before the next attempt. Zero on exhaustion.
	Delay time.Duration

	// Outcome is the failing outcome value, carried verbatim.
	Outcome any
}

// Observer receives lifecycle callbacks for a single retry session.
//
// Implementations must be safe for concurrent use when shared between
// sessions. Callbacks are best-effort diagnostics; they must not influence
// the retry decision.
type Observer interface {
	// OnRetry is called after a failing attempt, just before the wait for
	// the next one.
	OnRetry(rec AttemptRecord)

	// OnExhausted is called when the delay schedule is exhausted while the
	// outcome still needs a retry. The session returns rec.Outcome to the
	// caller afterwards.
	OnExhausted(rec AttemptRecord)
}
