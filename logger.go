package falloff

import (
	"log/slog"
	"sync/atomic"
)

func newNopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by the package. By default nothing is
// logged. Passing nil restores the default.
//
// Configure and Sample log at [slog.LevelDebug].
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package's current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
