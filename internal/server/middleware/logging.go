package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger returns middleware that logs every request with zerolog and
// attaches a request-scoped logger carrying a request ID to the context.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			w.Header().Set("X-Request-ID", rid)
		}

		// Attach request-scoped logger
		logger := log.With().
			Str("request_id", rid).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Logger()
		ctx := logger.WithContext(r.Context())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		duration := time.Since(start)
		if rec.status >= 500 {
			logger.Error().
				Int("status", rec.status).
				Dur("duration", duration).
				Msg("http request failed")
		} else {
			logger.Info().
				Int("status", rec.status).
				Dur("duration", duration).
				Msg("http request served")
		}
	})
}
