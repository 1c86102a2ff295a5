package huecurve

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so that callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for huecurve and its sub-packages. By
// default nothing is logged. Passing nil restores the default.
//
// Log levels used:
//   - [slog.LevelDebug]: geometry recomputation, gesture handling
//   - [slog.LevelInfo]: broker connection state
//   - [slog.LevelWarn]: rejected input, dropped nested updates, publish failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages use it to share the
// configuration made with [SetLogger].
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
