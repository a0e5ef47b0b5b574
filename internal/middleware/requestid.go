package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// requestIDHeader carries the correlation ID in both directions.
const requestIDHeader = "X-Request-ID"

// maxRequestIDLen rejects absurd inbound IDs; anything longer is replaced
// rather than truncated so logs never carry a mangled identifier.
const maxRequestIDLen = 64

// RequestID ensures every request carries a correlation ID. A sane inbound
// X-Request-ID is kept so callers can trace a submission across systems;
// otherwise a fresh UUID is minted. The ID is stored in the context and
// echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		w.Header().Set(requestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the correlation ID stored by RequestID, or ""
// outside the middleware chain.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
