// Package logging carries a structured logger through a context.
//
// The CLI installs a tint handler on stderr; library code retrieves it with
// Get and logs diagnostics at Debug level. User-facing progress output is not
// logged, it is printed directly by the orchestrators.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// EnvLogLevel overrides the level chosen from command-line flags.
const EnvLogLevel = "UVKIT_LOG_LEVEL"

type ctxKey struct{}

var discard = slog.New(slog.DiscardHandler)

// Options configures New.
type Options struct {
	Verbose bool
	NoColor bool
}

// New returns a logger writing to w. The level is Info, Debug when
// Verbose is set, and EnvLogLevel wins over both.
func New(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}))
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Put returns a context carrying l.
func Put(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Get returns the logger stored in ctx, or one that discards everything.
func Get(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return discard
}
