package observe

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger is the logger used for reaction failure reports.
var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by this package. A nil logger
// restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
