// SPDX-License-Identifier: EPL-2.0

// Package logger is the structured logger shared by the beeptalk packages
// and the CLI.
//
// It wraps log/slog with a global DefaultLogger whose level comes from the
// LOG_LEVEL environment variable and can be changed at run time with
// SetLevel or SetVerbose.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// DefaultLogger is the global logger. Packages that accept a
	// *slog.Logger option fall back to it. It is never reassigned;
	// SetOutput redirects the writer underneath it instead.
	DefaultLogger *slog.Logger

	level = new(slog.LevelVar)
	out   = &output{w: os.Stderr}
)

func init() {
	level.Set(ParseLevel(os.Getenv("LOG_LEVEL")))
	DefaultLogger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// output is an io.Writer whose target can be swapped while loggers write.
type output struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.w.Write(p)
}

func (o *output) set(w io.Writer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.w = w
}

// ParseLevel maps debug, info, warn/warning and error (any case) to a slog
// level. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel changes the level of DefaultLogger and of every logger derived
// from it.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level returns the current level.
func Level() slog.Level {
	return level.Level()
}

// SetVerbose switches between debug and info.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

// SetOutput redirects DefaultLogger, and every logger derived from it, to w.
func SetOutput(w io.Writer) {
	out.set(w)
}

// With returns DefaultLogger with attrs attached.
func With(args ...any) *slog.Logger {
	return DefaultLogger.With(args...)
}

func Debug(msg string, args ...any) { DefaultLogger.Debug(msg, args...) }

func Info(msg string, args ...any) { DefaultLogger.Info(msg, args...) }

// Warn is for recoverable problems.
func Warn(msg string, args ...any) { DefaultLogger.Warn(msg, args...) }

func Error(msg string, args ...any) { DefaultLogger.Error(msg, args...) }
