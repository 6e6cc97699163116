// Package middleware holds the cross-cutting HTTP middleware of the API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cobia-app/cobia-api/internal/api/shared"
	"github.com/cobia-app/cobia-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a logger annotated
// with it, so later stages and the store layer log with the same
// correlation ID. This middleware should be applied early in the chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
