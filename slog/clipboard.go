// Package slog provides logging decorators for lawcopy services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lawcopy"
)

// Ensure LoggingClipboard implements lawcopy.Clipboard.
var _ lawcopy.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with logging.
type LoggingClipboard struct {
	next   lawcopy.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next lawcopy.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteText delegates to the wrapped clipboard and logs the operation.
func (c *LoggingClipboard) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		c.logger.Log(ctx, level, "clipboard write",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteText(ctx, text)
}
