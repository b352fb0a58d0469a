package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a request scoped logger to the context and logs the
// start and outcome of every request. An incoming X-Request-ID is reused.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			logger := base.With(
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
			)

			ctx := ContextWithLogger(r.Context(), logger)
			sw := wrapStatus(w)
			start := time.Now()
			logger.DebugContext(ctx, "request started")
			next.ServeHTTP(sw, r.WithContext(ctx))
			logger.InfoContext(ctx, "request completed", "status", sw.status, "duration", time.Since(start))
		})
	}
}

// RequestMetrics receives one observation per served request.
type RequestMetrics interface {
	RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// recordRequests reports every request to metrics. route maps the request to
// its registered pattern so the path label stays bounded.
func recordRequests(metrics RequestMetrics, route func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapStatus(w)
			start := time.Now()
			next.ServeHTTP(sw, r)
			metrics.RecordHTTPRequest(r.Context(), r.Method, route(r), sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func wrapStatus(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
