package observe

// NoopObserver implements Observer with no-op methods.
type NoopObserver struct{}

func (NoopObserver) OnRetry(AttemptRecord)     {}
func (NoopObserver) OnExhausted(AttemptRecord) {}
