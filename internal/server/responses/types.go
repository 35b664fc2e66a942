// Package responses defines API response types used by the readmegen HTTP handlers.
package responses

import "time"

// ReadmeResponse is returned by the generate endpoint.
type ReadmeResponse struct {
	ReadmeContent string              `json:"readme_content"`
	Success       bool                `json:"success"`
	Message       string              `json:"message"`
	Metadata      *GenerationMetadata `json:"metadata,omitempty"`
}

// GenerationMetadata carries request-level detail alongside the README.
type GenerationMetadata struct {
	FilesAnalyzed        int      `json:"files_analyzed"`
	PrimaryLanguage      string   `json:"primary_language"`
	TechnologiesDetected []string `json:"technologies_detected"`
	ModelUsed            string   `json:"model_used"`
	UsedFallback         bool     `json:"used_fallback"`
	Cached               bool     `json:"cached"`
	DurationMS           int64    `json:"duration_ms"`
}

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime"`
	Model     string    `json:"model"`
}

// ModelInfoResponse describes the configured generation model.
type ModelInfoResponse struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// RootResponse identifies the service at the API root.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Model   string `json:"model"`
}
