package badge

import (
	"log/slog"
	"sync/atomic"
)

// logger is shared by the engine and its sub-packages. It starts out
// discarding everything, so a disabled Debug call costs one atomic load
// and an Enabled check.
var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger routes badge log output to l. Passing nil silences it again.
// It may be called at any time, including while placements run.
//
// Levels:
//   - [slog.LevelDebug]: one record per placement (strategy, corner, score, evals)
//   - [slog.LevelInfo]: batch summaries from overlay
//   - [slog.LevelWarn]: input that was skipped, such as empty SVG paths
//
// For example:
//
//	badge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger set with [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
