package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
)

type ctxLoggerKey struct{}

var defaultLogger = slog.New(clog.New(
	clog.WithWriter(os.Stderr),
	clog.WithLevel(slog.LevelInfo),
))

// Default returns the process-wide logger
func Default() *slog.Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Called once from CLI
// startup; not synchronized.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
}

// With returns a context carrying the logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger carried by the context, falling back to the
// default logger.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}
