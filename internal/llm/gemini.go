package llm

import (
	"context"
	"time"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client. It only
// focuses on the API call itself; degradation policy belongs to callers.
type GeminiClient struct {
	cli     *genai.Client
	model   string
	params  Params
	timeout time.Duration
}

// NewGeminiClient constructs a client for the given model. The API key may
// be empty, in which case the genai SDK reads it from the environment.
func NewGeminiClient(ctx context.Context, apiKey, model string, params Params, timeout time.Duration) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &GeminiClient{cli: cli, model: model, params: params, timeout: timeout}, nil
}

// ModelName returns the configured model identifier.
func (g *GeminiClient) ModelName() string { return g.model }

// Generate sends one prompt and returns the model's text. The call is
// bounded by the configured timeout on top of any caller deadline.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temp := float32(g.params.Temperature)
	topP := float32(g.params.TopP)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
		TopP:        &topP,
	}
	if g.params.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(g.params.MaxTokens)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
