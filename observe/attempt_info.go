package observe

import "context"

type attemptInfoKey struct{}

// AttemptInfo is per-attempt metadata attached to the context the
// context-aware retry entry points pass to the operation.
type AttemptInfo struct {
	// Attempt is the 1-based number of the attempt about to run.
	Attempt int
}

// WithAttemptInfo returns a context derived from ctx that carries info.
func WithAttemptInfo(ctx context.Context, info AttemptInfo) context.Context {
	return context.WithValue(ctx, attemptInfoKey{}, info)
}

// AttemptFromContext returns the AttemptInfo from ctx, if present.
func AttemptFromContext(ctx context.Context) (AttemptInfo, bool) {
	info, ok := ctx.Value(attemptInfoKey{}).(AttemptInfo)
	return info, ok
}
