package buffer

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the buffer package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the buffer package's logger, which receives one
// diagnostic per poisoned buffer. This must be called before any buffer
// operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
