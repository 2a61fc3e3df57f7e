package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/where-is-it/internal/logger"
)

// withLogging emits one access-log line per request: URI, method, response
// status, handling duration, and body size. It wraps the response writer in
// a [responseWriter] to observe what the downstream handler wrote.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
