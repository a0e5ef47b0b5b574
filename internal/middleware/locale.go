package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey stores the matched locale in the request context.
var LocaleKey = localeContextKey{}

// supported lists the locales the API can answer in; English is the fallback.
var supported = []language.Tag{
	language.English,
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

// Locale matches the request against the supported locales using the
// X-Locale header first and Accept-Language second.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, _ := language.MatchStrings(matcher, r.Header.Get("X-Locale"), r.Header.Get("Accept-Language"))
		base, _ := tag.Base()
		ctx := context.WithValue(r.Context(), LocaleKey, base.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext returns the locale stored by Locale, defaulting to "en".
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return "en"
}
