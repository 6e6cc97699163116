package api

import (
	"log/slog"
	"net/http"

	"github.com/cobia-app/cobia-api/internal/platform/logger"
)

// logFromRequest returns the request-scoped logger placed in the context by
// the trace middleware, falling back to the given handler logger.
func logFromRequest(r *http.Request, fallback *slog.Logger) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), fallback)
}
