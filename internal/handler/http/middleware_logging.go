package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
)

// withLogging writes one access entry per request. Entries go to the access
// logger when one is configured, otherwise to the request-scoped logger.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.accessLogger
		if log == nil {
			log = logger.FromRequest(r)
		}

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("trace_id", w.Header().Get(traceIDHeader)).
			Str("remote_addr", r.RemoteAddr).
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
