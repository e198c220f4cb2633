package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/healthz", nil))

	if seen == "" {
		t.Fatal("expected a generated request id in context")
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("header %q does not match context %q", rr.Header().Get("X-Request-ID"), seen)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/v1/healthz", nil)
	req.Header.Set("X-Request-ID", "incoming-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "incoming-42" {
		t.Fatalf("expected incoming id to be kept, got %q", seen)
	}
}
