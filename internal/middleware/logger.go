package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/xpmourad/cutout/internal/infra/geoip"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logger emits one structured log line per request. When a country resolver
// is available the client's ISO country code is attached, which helps when
// the upstream image service rejects unsupported regions.
func Logger(l zerolog.Logger, countries geoip.CountryResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			event := l.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Dur("duration", time.Since(start)).
				Str("request_id", RequestIDFromContext(r.Context()))
			if countries != nil {
				if country, err := countries.CountryCode(ClientIP(r)); err == nil && country != "" {
					event = event.Str("country", country)
				}
			}
			event.Msg("http request")
		})
	}
}
