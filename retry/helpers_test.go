package retry

import (
	"context"
	"sync"
	"time"

	"github.com/tryagain-go/tryagain/observe"
)

// recordingExecutor satisfies both executor interfaces and records every
// requested wait without actually sleeping.
type recordingExecutor struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingExecutor) Delay(d time.Duration) {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
}

func (r *recordingExecutor) DelayCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Delay(d)
	return nil
}

func (r *recordingExecutor) waits() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}

// ctxExecutor adapts recordingExecutor to the ContextExecutor interface.
type ctxExecutor struct {
	rec *recordingExecutor
}

func (c ctxExecutor) Delay(ctx context.Context, d time.Duration) error {
	return c.rec.DelayCtx(ctx, d)
}

// recordingObserver captures emitted diagnostics.
type recordingObserver struct {
	mu        sync.Mutex
	retries   []observe.AttemptRecord
	exhausted []observe.AttemptRecord
}

func (r *recordingObserver) OnRetry(rec observe.AttemptRecord) {
	r.mu.Lock()
	r.retries = append(r.retries, rec)
	r.mu.Unlock()
}

func (r *recordingObserver) OnExhausted(rec observe.AttemptRecord) {
	r.mu.Lock()
	r.exhausted = append(r.exhausted, rec)
	r.mu.Unlock()
}
