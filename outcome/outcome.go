// Package outcome defines the retry predicate and the built-in outcome
// types the retry loop understands.
//
// The loop never inspects an outcome beyond the single yes/no question
// asked by Retryable; failures travel through it as ordinary values, never
// as control flow.
package outcome

// Retryable is implemented by any value that can tell the retry loop
// whether another attempt is needed. NeedsRetry must be side-effect free.
type Retryable interface {
	// NeedsRetry reports whether the operation should be attempted again.
	// false terminates the session with this value as its result.
	NeedsRetry() bool
}

// Check pairs an arbitrary value with a caller-supplied retry decision,
// for outcome types that cannot grow a method set.
type Check[T any] struct {
	Val   T
	Retry bool
}

// Of builds a Check from a value and a decision already made.
func Of[T any](v T, needsRetry bool) Check[T] {
	return Check[T]{Val: v, Retry: needsRetry}
}

func (c Check[T]) NeedsRetry() bool { return c.Retry }
