package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace id. Clients may supply their own;
// otherwise one is minted here.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id and binds a child logger to
// the request context so that all log lines produced while serving the
// request share the same trace_id field. The id is echoed back in the
// response header, letting a caller correlate an error response with the
// server-side log entries for that exact request.
//
// An id supplied by the caller in the request header is trusted as-is; the
// middleware never overwrites it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		// Child logger: the trace_id field must not leak into requests
		// served concurrently through the shared root logger.
		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
