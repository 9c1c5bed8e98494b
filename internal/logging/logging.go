// Package logging provides the process-wide slog configuration and
// component-scoped loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu   sync.RWMutex
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Setup replaces the process logger. Call once, before components grab
// their loggers.
func Setup(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Suppress discards all log output, for render-heavy interactive
// commands.
func Suppress() {
	Setup(io.Discard, slog.LevelError)
}

// WithComponent returns a logger tagged with the component name.
func WithComponent(name string) *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With(slog.String("component", name))
}
