package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategoryGit, SeverityFatal, "repository clone failed")
	want := "git (fatal): repository clone failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("connection refused")
	wrapped := Wrap(cause, CategoryNetwork, SeverityWarning, "network unreachable")
	if !errors.Is(wrapped, cause) {
		t.Errorf("wrapped error does not unwrap to cause")
	}
}

func TestCategoryHelpers(t *testing.T) {
	err := InvalidRepoURL("https://github.com/onlyuser")
	if !IsCategory(err, CategoryValidation) {
		t.Errorf("expected validation category")
	}
	if GetCategory(err) != CategoryValidation {
		t.Errorf("GetCategory = %v", GetCategory(err))
	}
	if GetCategory(fmt.Errorf("plain")) != CategoryInternal {
		t.Errorf("plain errors should map to internal")
	}
}

func TestRetryable(t *testing.T) {
	err := ModelCallFailed("readme", errors.New("timeout"))
	if !IsRetryable(err) {
		t.Errorf("model call failures should be retryable")
	}
	if IsRetryable(InvalidRepoURL("x")) {
		t.Errorf("validation failures should not be retryable")
	}
}

func TestHTTPErrorAdapterStatusCodes(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", InvalidRepoURL("bad"), http.StatusBadRequest},
		{"git", CloneFailed("url", errors.New("x")), http.StatusBadGateway},
		{"model", ModelCallFailed("tech", errors.New("x")), http.StatusBadGateway},
		{"analysis", AnalysisFailed("structure", errors.New("x")), http.StatusUnprocessableEntity},
		{"internal", InternalError("boom", nil), http.StatusInternalServerError},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.StatusCodeFor(tt.err); got != tt.expected {
				t.Errorf("StatusCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPErrorAdapterWriteErrorResponse(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/generate-readme", nil)

	adapter.WriteErrorResponse(w, r, InvalidRepoURL("https://github.com/onlyuser"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}
