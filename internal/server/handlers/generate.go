package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/server/responses"
	"git.home.luguber.info/inful/readmegen/internal/service"
)

// maxRequestBody bounds the generate request body.
const maxRequestBody = 64 * 1024

// GenerateRequest is the body of the generate endpoint.
type GenerateRequest struct {
	RepoURL string `json:"repo_url"`
}

// ReadmeGenerator is the service surface the generate handler needs.
type ReadmeGenerator interface {
	Generate(ctx context.Context, repoURL string) (*service.ReadmeResult, error)
}

// GenerateHandlers contains the README generation handlers.
type GenerateHandlers struct {
	svc          ReadmeGenerator
	errorAdapter *rerrors.HTTPErrorAdapter
}

// NewGenerateHandlers creates the generation handlers instance.
func NewGenerateHandlers(svc ReadmeGenerator) *GenerateHandlers {
	return &GenerateHandlers{
		svc:          svc,
		errorAdapter: rerrors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleGenerate handles POST /generate-readme.
func (h *GenerateHandlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		err := rerrors.ValidationFailed("method", "only POST is allowed").
			WithContext("method", r.Method)
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	var req GenerateRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if err == io.EOF {
			err = rerrors.ValidationFailed("body", "request body is required")
		} else {
			err = rerrors.ValidationFailed("body", "invalid JSON: "+err.Error())
		}
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	if req.RepoURL == "" {
		h.errorAdapter.WriteErrorResponse(w, r, rerrors.ValidationFailed("repo_url", "repo_url is required"))
		return
	}

	result, err := h.svc.Generate(r.Context(), req.RepoURL)
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	resp := responses.ReadmeResponse{
		ReadmeContent: result.Readme,
		Success:       true,
		Message:       "README generated successfully!",
		Metadata: &responses.GenerationMetadata{
			FilesAnalyzed:        result.FilesAnalyzed,
			PrimaryLanguage:      result.PrimaryLanguage,
			TechnologiesDetected: result.Technologies,
			ModelUsed:            result.ModelUsed,
			UsedFallback:         result.UsedFallback,
			Cached:               result.Cached,
			DurationMS:           result.Duration.Milliseconds(),
		},
	}
	if result.UsedFallback {
		resp.Message = "README generated with fallback synthesis"
	}

	if err := writeJSONPretty(w, r, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			rerrors.InternalError("failed to write generate response", err))
	}
}
