// Package delay provides the built-in wait-duration strategies.
//
// Every strategy is an unbounded sequence of durations; callers bound it
// with Take before handing it to the retry loop:
//
//	delay.Fixed(50*time.Millisecond).Take(3)
//	delay.Exponential(50*time.Millisecond).CappedAt(250*time.Millisecond).Take(5)
package delay

import (
	"time"

	"github.com/tryagain-go/tryagain/seq"
)

// None yields zero-length delays. A good fit for the synchronous entry
// points, where any real delay blocks the calling goroutine.
func None() seq.Seq[time.Duration, seq.Infinite] {
	return seq.Repeat(time.Duration(0))
}

// Fixed yields d on every step.
func Fixed(d time.Duration) seq.Seq[time.Duration, seq.Infinite] {
	return seq.Repeat(d)
}
