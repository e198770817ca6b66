package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/upload-sink/internal/logger"
)

// withLogging writes one access log line per request. The line is written
// even when the handler aborts the response with a panic, which keeps
// propagating afterwards.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", lw.status).
				Bool("hijacked", lw.hijacked).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()
		}()

		next.ServeHTTP(lw, r)
	})
}
