package http

import (
	"context"
	"log/slog"

	"github.com/example/meeting-planner/internal/logging"
)

// ContextWithLogger returns a derived context carrying the request logger.
// Application services pick it up through the logging package.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext returns the request logger, or nil outside a request.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
