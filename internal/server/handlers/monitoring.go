package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/config"
	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/server/responses"
	"git.home.luguber.info/inful/readmegen/internal/version"
)

// MonitoringHandlers contains health and informational handlers.
type MonitoringHandlers struct {
	cfg          *config.Config
	startTime    time.Time
	errorAdapter *rerrors.HTTPErrorAdapter
}

// NewMonitoringHandlers creates the monitoring handlers instance.
func NewMonitoringHandlers(cfg *config.Config) *MonitoringHandlers {
	return &MonitoringHandlers{
		cfg:          cfg,
		startTime:    time.Now(),
		errorAdapter: rerrors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleRoot handles GET /.
func (h *MonitoringHandlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	resp := responses.RootResponse{
		Message: "README Generator API",
		Version: version.Version,
		Model:   h.cfg.Model.Name,
	}
	if err := writeJSONPretty(w, r, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			rerrors.InternalError("failed to write root response", err))
	}
}

// HandleHealth handles GET /health.
func (h *MonitoringHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		err := rerrors.ValidationFailed("method", "only GET is allowed").
			WithContext("method", r.Method)
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	resp := responses.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Model:     h.cfg.Model.Name,
	}
	if err := writeJSONPretty(w, r, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			rerrors.InternalError("failed to write health response", err))
	}
}

// HandleModelInfo handles GET /models.
func (h *MonitoringHandlers) HandleModelInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		err := rerrors.ValidationFailed("method", "only GET is allowed").
			WithContext("method", r.Method)
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	resp := responses.ModelInfoResponse{
		Provider:    "Gemini",
		Model:       h.cfg.Model.Name,
		Temperature: h.cfg.Model.Temperature,
		MaxTokens:   h.cfg.Model.MaxTokens,
	}
	if err := writeJSONPretty(w, r, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			rerrors.InternalError("failed to write model info response", err))
	}
}
