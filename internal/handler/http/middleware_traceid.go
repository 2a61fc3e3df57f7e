package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request's trace identifier in both directions:
// an incoming value is reused, and the final value is echoed back so the
// frontend can quote it in bug reports.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a per-request child logger tagged with a trace_id
// field to the request context. Every log line the downstream middleware and
// handlers emit through [logger.FromRequest] then shares that identifier.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
