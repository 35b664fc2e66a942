package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
)

func TestChainAssignsRequestID(t *testing.T) {
	chain := Chain(slog.Default(), rerrors.NewHTTPErrorAdapter(slog.Default()))

	var seen string
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen == "" {
		t.Fatalf("expected request ID in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("header %q does not match context ID %q", got, seen)
	}
}

func TestChainHonorsInboundRequestID(t *testing.T) {
	chain := Chain(slog.Default(), rerrors.NewHTTPErrorAdapter(slog.Default()))

	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "caller-id-1" {
		t.Fatalf("expected inbound request ID to be kept, got %q", got)
	}
}

func TestChainRecoversPanics(t *testing.T) {
	chain := Chain(slog.Default(), rerrors.NewHTTPErrorAdapter(slog.Default()))

	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}
