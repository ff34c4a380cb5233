package outcome

import "os"

// Result carries a value-or-error pair. It needs a retry exactly when the
// error is non-nil.
type Result[T any] struct {
	Val T
	Err error
}

// OK builds a successful Result.
func OK[T any](v T) Result[T] {
	return Result[T]{Val: v}
}

// Fail builds a failed Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) NeedsRetry() bool { return r.Err != nil }

// Unpack returns the conventional Go pair.
func (r Result[T]) Unpack() (T, error) { return r.Val, r.Err }

// Option carries a possibly-absent value. It needs a retry exactly when the
// value is absent.
type Option[T any] struct {
	Val     T
	Present bool
}

// Some builds a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{Val: v, Present: true}
}

// None builds an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) NeedsRetry() bool { return !o.Present }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Val, o.Present }

// ExitCode classifies a process exit code; anything non-zero needs a retry.
type ExitCode int

func (c ExitCode) NeedsRetry() bool { return c != 0 }

// ProcessState wraps the state of a finished process. A nil state (the
// process never ran) or an unsuccessful exit needs a retry.
type ProcessState struct {
	State *os.ProcessState
}

func (p ProcessState) NeedsRetry() bool {
	return p.State == nil || !p.State.Success()
}
