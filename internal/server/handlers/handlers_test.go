package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/config"
	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/server/responses"
	"git.home.luguber.info/inful/readmegen/internal/service"
)

type stubGenerator struct {
	result *service.ReadmeResult
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (*service.ReadmeResult, error) {
	return s.result, s.err
}

func goodResult() *service.ReadmeResult {
	return &service.ReadmeResult{
		Readme:          "# Widget Tools\n\nA tool.",
		RepoName:        "widget-tools",
		ModelUsed:       "gemini-2.5-flash",
		PrimaryLanguage: "Python",
		Technologies:    []string{"Python", "FastAPI"},
		FilesAnalyzed:   3,
		Duration:        2 * time.Second,
	}
}

func TestHandleGenerate_OK(t *testing.T) {
	h := NewGenerateHandlers(&stubGenerator{result: goodResult()})

	body := strings.NewReader(`{"repo_url":"https://github.com/acme/widget-tools"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-readme", body)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp responses.ReadmeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true")
	}
	if resp.ReadmeContent != "# Widget Tools\n\nA tool." {
		t.Fatalf("unexpected readme content: %q", resp.ReadmeContent)
	}
	if resp.Metadata == nil || resp.Metadata.FilesAnalyzed != 3 {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
	if resp.Metadata.PrimaryLanguage != "Python" {
		t.Fatalf("unexpected primary language: %q", resp.Metadata.PrimaryLanguage)
	}
}

func TestHandleGenerate_FallbackMessage(t *testing.T) {
	result := goodResult()
	result.UsedFallback = true
	result.FallbackReason = "model call failed"
	h := NewGenerateHandlers(&stubGenerator{result: result})

	body := strings.NewReader(`{"repo_url":"https://github.com/acme/widget-tools"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-readme", body)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	var resp responses.ReadmeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !resp.Metadata.UsedFallback {
		t.Fatalf("fallback result should still succeed: %+v", resp)
	}
	if !strings.Contains(resp.Message, "fallback") {
		t.Fatalf("expected fallback message, got %q", resp.Message)
	}
}

func TestHandleGenerate_MethodNotAllowed(t *testing.T) {
	h := NewGenerateHandlers(&stubGenerator{result: goodResult()})

	req := httptest.NewRequest(http.MethodGet, "/generate-readme", nil)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleGenerate_MissingBody(t *testing.T) {
	h := NewGenerateHandlers(&stubGenerator{result: goodResult()})

	req := httptest.NewRequest(http.MethodPost, "/generate-readme", nil)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleGenerate_MissingRepoURL(t *testing.T) {
	h := NewGenerateHandlers(&stubGenerator{result: goodResult()})

	req := httptest.NewRequest(http.MethodPost, "/generate-readme", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleGenerate_ServiceErrorMapsToStatus(t *testing.T) {
	h := NewGenerateHandlers(&stubGenerator{err: rerrors.InvalidRepoURL("https://github.com/onlyuser")})

	body := strings.NewReader(`{"repo_url":"https://github.com/onlyuser"}`)
	req := httptest.NewRequest(http.MethodPost, "/generate-readme", body)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for validation error, got %d", rec.Code)
	}
}

func TestHandleHealth_OK(t *testing.T) {
	cfg := config.Default()
	h := NewMonitoringHandlers(cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.HandleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp responses.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("expected healthy status, got %q", resp.Status)
	}
}

func TestHandleModelInfo_OK(t *testing.T) {
	cfg := config.Default()
	h := NewMonitoringHandlers(cfg)

	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	rec := httptest.NewRecorder()

	h.HandleModelInfo(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp responses.ModelInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Model != cfg.Model.Name {
		t.Fatalf("expected model %q, got %q", cfg.Model.Name, resp.Model)
	}
}

func TestHandleRoot_NotFoundForOtherPaths(t *testing.T) {
	h := NewMonitoringHandlers(config.Default())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	h.HandleRoot(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
