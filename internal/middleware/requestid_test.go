package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Fatal("no correlation id in context")
	}
	if w.Header().Get(requestIDHeader) != got {
		t.Fatalf("response header %q does not match context id %q", w.Header().Get(requestIDHeader), got)
	}
}

func TestRequestIDKeepsSaneInboundID(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(requestIDHeader, "caller-supplied-id")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got != "caller-supplied-id" {
		t.Fatalf("inbound id not kept: %q", got)
	}
}

func TestRequestIDReplacesOversizedInboundID(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(requestIDHeader, strings.Repeat("a", maxRequestIDLen+1))
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got == "" || len(got) > maxRequestIDLen {
		t.Fatalf("oversized inbound id not replaced: %q", got)
	}
}

func TestRequestIDFromContextOutsideChain(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(r.Context()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
