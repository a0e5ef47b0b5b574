package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocaleMatching(t *testing.T) {
	tests := []struct {
		name   string
		xloc   string
		accept string
		want   string
	}{
		{name: "default", want: "en"},
		{name: "accept indonesian", accept: "id-ID,id;q=0.9", want: "id"},
		{name: "accept english region", accept: "en-GB", want: "en"},
		{name: "x-locale wins", xloc: "id", accept: "en-US", want: "id"},
		{name: "unsupported falls back", accept: "fr-FR", want: "en"},
		{name: "garbage falls back", accept: ";;;", want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := Locale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocaleFromContext(r.Context())
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.xloc != "" {
				r.Header.Set("X-Locale", tt.xloc)
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			handler.ServeHTTP(httptest.NewRecorder(), r)

			if got != tt.want {
				t.Fatalf("locale = %q, want %q", got, tt.want)
			}
		})
	}
}
