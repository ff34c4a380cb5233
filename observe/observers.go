package observe

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnRetry(AttemptRecord)     {}
func (BaseObserver) OnExhausted(AttemptRecord) {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnRetry(rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnRetry(rec)
		}
	}
}

func (m MultiObserver) OnExhausted(rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnExhausted(rec)
		}
	}
}
