// Package seq provides lazy, single-use sequences whose length class is
// tracked in the type system.
//
// A Seq carries a phantom type parameter that records whether the sequence
// is known to be finite, known to be infinite, or of unknown length. Code
// that must terminate can demand a Seq[T, Finite] and the compiler rejects
// anything else. Take is the only adaptor that upgrades a sequence to
// Finite; Map and Filter preserve whatever class they were given.
package seq

// Markers for the length class of a sequence. They carry no data and exist
// only as type arguments.
type (
	// Finite marks a sequence that is guaranteed to terminate.
	Finite struct{}
	// Infinite marks a sequence that never terminates on its own.
	Infinite struct{}
	// Unknown marks a sequence whose length cannot be determined.
	Unknown struct{}
)

// Length is the set of valid length-class markers.
type Length interface {
	Finite | Infinite | Unknown
}

// Seq is a pull-based sequence of T values tagged with length class L.
//
// A Seq is single-use: it owns an internal cursor and advances one element
// per call to Next. Copies of a Seq share that cursor. The zero value is an
// exhausted sequence.
type Seq[T any, L Length] struct {
	next func() (T, bool)
}

// Next returns the next element. The second result is false once the
// sequence is exhausted; an exhausted sequence never resumes.
func (s Seq[T, L]) Next() (T, bool) {
	if s.next == nil {
		var zero T
		return zero, false
	}
	return s.next()
}

// newSeq wraps next with the exhaustion latch all constructors share: after
// the first false, next is never consulted again.
func newSeq[T any, L Length](next func() (T, bool)) Seq[T, L] {
	done := false
	return Seq[T, L]{next: func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		v, ok := next()
		if !ok {
			done = true
			var zero T
			return zero, false
		}
		return v, true
	}}
}

// Generate wraps an arbitrary generator. Nothing is known about its length,
// so the result is tagged Unknown.
func Generate[T any](next func() (T, bool)) Seq[T, Unknown] {
	return newSeq[T, Unknown](next)
}

// Forever produces one element per call to next, without end.
func Forever[T any](next func() T) Seq[T, Infinite] {
	return newSeq[T, Infinite](func() (T, bool) {
		return next(), true
	})
}

// Repeat yields v endlessly.
func Repeat[T any](v T) Seq[T, Infinite] {
	return Forever(func() T { return v })
}

// FromSlice yields the elements of xs in order. Iterating a bounded
// collection cannot be unbounded, so the result is Finite.
func FromSlice[T any](xs []T) Seq[T, Finite] {
	i := 0
	return newSeq[T, Finite](func() (T, bool) {
		if i >= len(xs) {
			var zero T
			return zero, false
		}
		v := xs[i]
		i++
		return v, true
	})
}

// Take bounds s to at most n elements. It is the only way to obtain a
// Finite sequence from one of unknown or infinite length. A negative n is
// treated as zero.
func (s Seq[T, L]) Take(n int) Seq[T, Finite] {
	remaining := n
	return newSeq[T, Finite](func() (T, bool) {
		if remaining <= 0 {
			var zero T
			return zero, false
		}
		remaining--
		return s.Next()
	})
}

// Filter drops elements for which pred is false. The length class is
// preserved: filtering cannot make a finite sequence unbounded, and it
// proves nothing about an unbounded one.
func (s Seq[T, L]) Filter(pred func(T) bool) Seq[T, L] {
	return newSeq[T, L](func() (T, bool) {
		for {
			v, ok := s.Next()
			if !ok {
				var zero T
				return zero, false
			}
			if pred(v) {
				return v, true
			}
		}
	})
}

// Map transforms each element of s with f, preserving the length class.
// It is a free function because methods cannot introduce the result type B.
func Map[T, B any, L Length](s Seq[T, L], f func(T) B) Seq[B, L] {
	return newSeq[B, L](func() (B, bool) {
		v, ok := s.Next()
		if !ok {
			var zero B
			return zero, false
		}
		return f(v), true
	})
}
