package keyconv

import (
	"go.uber.org/zap"
	"sync"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the keyconv package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the keyconv package's logger.
// This must be called before any conversions.
func SetLogger(l *zap.Logger) {
	logger = l
}
