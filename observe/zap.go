package observe

import "go.uber.org/zap"

// ZapObserver renders session events as structured zap entries: retries at
// Debug, exhaustion at Error with the last outcome seen.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver builds an observer that writes to log. A nil log falls
// back to the process-global logger.
func NewZapObserver(log *zap.Logger) ZapObserver {
	return ZapObserver{log: log}
}

func (z ZapObserver) logger() *zap.Logger {
	if z.log != nil {
		return z.log
	}
	return zap.L()
}

func (z ZapObserver) OnRetry(rec AttemptRecord) {
	z.logger().Debug("operation was not successful, waiting",
		zap.Int("tries", rec.Attempt),
		zap.Duration("delay", rec.Delay),
	)
}

func (z ZapObserver) OnExhausted(rec AttemptRecord) {
	z.logger().Error("operation was not successful after maximum retries, aborting with last output seen",
		zap.Int("tries", rec.Attempt),
		zap.Any("last_output", rec.Outcome),
	)
}
