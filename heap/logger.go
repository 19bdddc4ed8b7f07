package heap

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the heap package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the heap package's logger.
// This must be called before any heap operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

var debug atomic.Bool

// SetDebug enables logging of retain/release calls on refs with no live
// object. The production contract is unchanged: such calls remain no-ops.
func SetDebug(on bool) {
	debug.Store(on)
}
