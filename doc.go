// Package tryagain retries fallible operations with a caller-chosen,
// provably finite delay schedule.
//
// The operation returns an outcome value; the loop asks it a single
// question — does this need another try — and otherwise treats it as
// opaque. The retry bound is the length of the delay schedule, built by
// bounding one of the delay strategies with Take:
//
//	out := tryagain.Retry(func() outcome.Result[int] {
//		return fetch()
//	}).DelayedBy(delay.Exponential(50 * time.Millisecond).CappedAt(time.Second).Take(5))
//
// The schedule type only admits sequences that are finite by construction,
// so an unbounded retry loop is a compile error, not a production incident.
// On exhaustion the last failing outcome is returned as-is.
//
// RetryCtx is the context-aware variant: the wait between attempts is cut
// short when the context is done, and the session then returns the last
// outcome without running the operation again.
package tryagain
