package http

import (
	"context"
	"log/slog"
	"net/http"
)

// handlerBase is embedded by every handler. It owns the responder and tags
// log lines with the handler name.
type handlerBase struct {
	name      string
	responder responder
	logger    *slog.Logger
}

func newHandlerBase(name string, logger *slog.Logger) handlerBase {
	if logger == nil {
		logger = slog.Default()
	}
	return handlerBase{name: name, responder: newResponder(logger), logger: logger}
}

// log returns the request logger, or the handler's own outside a request,
// with handler and operation attributes.
func (b handlerBase) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	logger := LoggerFromContext(ctx)
	if logger == nil {
		logger = b.logger
	}
	if logger == nil {
		logger = slog.Default()
	}
	pairs := append([]any{"handler", b.name, "operation", operation}, attrs...)
	return logger.With(pairs...)
}

// decodeBody reads the JSON body into dst. A malformed body is logged and
// answered with 400, and decodeBody returns false.
func (b handlerBase) decodeBody(w http.ResponseWriter, r *http.Request, operation string, dst any, attrs ...any) bool {
	if err := decodeJSON(r, dst); err != nil {
		attrs = append(attrs, "error_kind", "bad_request")
		b.log(r.Context(), operation, attrs...).WarnContext(r.Context(), "failed to decode request body", "error", err)
		b.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return false
	}
	return true
}
