// Package generator turns an analysis bundle into README text. It owns the
// prompt templates, the per-call character budgets, and the decision to fall
// back to deterministic synthesis when the hosted model fails or returns too
// little content.
package generator

import (
	"context"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
	"git.home.luguber.info/inful/readmegen/internal/fallback"
	"git.home.luguber.info/inful/readmegen/internal/llm"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
)

// Generator produces per-file summaries, technology labels, and the final
// README. It implements analysis.Summarizer.
type Generator struct {
	client          llm.Client
	minReadmeLength int
}

// New constructs a Generator. minReadmeLength is the threshold below which a
// model-produced README is discarded in favor of the fallback synthesizer.
func New(client llm.Client, minReadmeLength int) *Generator {
	if minReadmeLength <= 0 {
		minReadmeLength = 50
	}
	return &Generator{client: client, minReadmeLength: minReadmeLength}
}

// ModelName reports the underlying model identifier for response metadata.
func (g *Generator) ModelName() string { return g.client.ModelName() }

// SummarizeFile asks the model for a short summary of one file. The content
// is truncated to its prompt budget before the call.
func (g *Generator) SummarizeFile(ctx context.Context, name, content string) (string, error) {
	out, err := g.client.Generate(ctx, fileAnalysisPrompt(name, content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// DetectTechnologies asks the model for a comma-separated technology list.
func (g *Generator) DetectTechnologies(ctx context.Context, filesInfo, dependencies string) (string, error) {
	out, err := g.client.Generate(ctx, techDetectionPrompt(filesInfo, dependencies))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(out)
	// Some models echo the prompt's trailing label; keep only the list.
	if idx := strings.LastIndex(text, "Technologies:"); idx >= 0 {
		text = strings.TrimSpace(text[idx+len("Technologies:"):])
	}
	return text, nil
}

// Result is the outcome of README generation.
type Result struct {
	Readme       string
	UsedFallback bool
	// FallbackReason explains why the synthesizer ran, empty otherwise.
	FallbackReason string
}

// GenerateReadme produces the final README text. A model failure, an
// ill-formed document, or output below the minimum length degrades to the
// deterministic fallback synthesizer, so the caller always receives a
// complete, non-empty README.
func (g *Generator) GenerateReadme(ctx context.Context, repoURL string, a *analysis.Analysis) Result {
	out, err := g.client.Generate(ctx, readmePrompt(repoURL, a))
	if err != nil {
		slog.Warn("Model README generation failed, using fallback",
			logfields.RepoURL(repoURL), logfields.Error(err))
		return g.fallback(repoURL, a, "model call failed: "+err.Error())
	}

	readme := CleanModelOutput(out)
	if len(readme) < g.minReadmeLength {
		slog.Warn("Model README below minimum length, using fallback",
			logfields.RepoURL(repoURL), slog.Int("length", len(readme)))
		return g.fallback(repoURL, a, "model output below minimum length")
	}
	if !IsWellFormedReadme(readme) {
		slog.Warn("Model README not well-formed Markdown, using fallback",
			logfields.RepoURL(repoURL))
		return g.fallback(repoURL, a, "model output not well-formed")
	}

	return Result{Readme: readme}
}

func (g *Generator) fallback(repoURL string, a *analysis.Analysis, reason string) Result {
	readme := fallback.Synthesize(repoURL, a.Dependencies, a.FileStructure)
	return Result{Readme: readme, UsedFallback: true, FallbackReason: reason}
}
