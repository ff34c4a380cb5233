package delay

import (
	"time"

	"github.com/tryagain-go/tryagain/seq"
)

// Backoff configures an exponential backoff strategy. Obtain one with
// Exponential, then choose Uncapped or CappedAt.
type Backoff struct {
	initial time.Duration
}

// Exponential starts a backoff strategy whose first delay is initial.
func Exponential(initial time.Duration) Backoff {
	return Backoff{initial: initial}
}

// Uncapped yields initial, then doubles on every step without bound.
func (b Backoff) Uncapped() seq.Seq[time.Duration, seq.Infinite] {
	return b.sequence(0)
}

// CappedAt yields initial, then doubles on every step, clamping to max once
// doubling would exceed it. The clamped value becomes the new previous
// delay, so the sequence stays at max from then on.
func (b Backoff) CappedAt(max time.Duration) seq.Seq[time.Duration, seq.Infinite] {
	return b.sequence(max)
}

func (b Backoff) sequence(max time.Duration) seq.Seq[time.Duration, seq.Infinite] {
	var last time.Duration
	first := true
	return seq.Forever(func() time.Duration {
		if first {
			first = false
			last = b.initial
			return last
		}
		next := last * 2
		// Doubling a duration can wrap; treat overflow as reaching the cap
		// or, uncapped, as saturation.
		if next < last {
			next = 1<<63 - 1
		}
		if max > 0 && next > max {
			next = max
		}
		last = next
		return next
	})
}
