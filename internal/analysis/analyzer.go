// Package analysis turns a cloned directory tree into a bounded, ranked,
// size-capped textual summary suitable for prompting a language model. Every
// text field it produces is truncated to a documented character budget
// before leaving the package, and every per-file or per-stage failure
// degrades to a placeholder value instead of aborting the pipeline.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/foundation"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
)

// techDetectionSliceBudget caps the file-analysis and dependency slices fed
// to the technology-detection model call.
const techDetectionSliceBudget = 500

// Summarizer is the hosted-model collaborator consumed by the analyzer:
// plain text in, plain text out. Auth, transport, and retry behavior live
// behind this interface.
type Summarizer interface {
	// SummarizeFile returns a short natural-language summary of one file.
	SummarizeFile(ctx context.Context, name, content string) (string, error)
	// DetectTechnologies returns a comma-separated technology list derived
	// from file summaries and dependency text.
	DetectTechnologies(ctx context.Context, filesInfo, dependencies string) (string, error)
}

// Limits bounds the analyzer's output sizes. Zero values are not defaulted
// here; construct from config.
type Limits struct {
	MaxFileSize       int // per-file character budget
	MaxFilesToAnalyze int // priority selection cap
	MaxStructureFiles int // structure listing cap
}

// Analysis is the aggregate result handed to README generation. It is
// immutable once produced.
type Analysis struct {
	FileStructure   string
	Dependencies    string
	PrimaryLanguage string
	FileAnalyses    string
	SemanticContext string
	Technologies    string
	FilesAnalyzed   int
	// Degradations lists the stages that substituted placeholder values,
	// with reasons, so degraded analyses are observable and countable.
	Degradations []string
}

// Analyzer sequences the analysis pipeline for one repository checkout.
type Analyzer struct {
	summarizer Summarizer
	limits     Limits
}

// NewAnalyzer constructs an analyzer around the given model collaborator.
func NewAnalyzer(summarizer Summarizer, limits Limits) *Analyzer {
	return &Analyzer{summarizer: summarizer, limits: limits}
}

// Analyze runs the full pipeline against the repository rooted at repoPath.
// File reads and model calls happen sequentially, one file at a time; this
// keeps per-file ordering stable for reproducible prompt assembly and is
// easy to parallelize later with an index-stable worker pool.
func (a *Analyzer) Analyze(ctx context.Context, repoPath string) (*Analysis, error) {
	slog.Debug("Starting repository analysis", logfields.Path(repoPath))

	structure := FileStructure(repoPath, a.limits.MaxStructureFiles)

	deps := DependencyFiles(repoPath)
	depsText := FormatDependencies(deps)

	language := DetectPrimaryLanguage(repoPath)
	slog.Debug("Primary language detected", logfields.Language(language))

	fileAnalyses, analyzedCount, degradations := a.analyzeFiles(ctx, repoPath)

	semanticContext := SemanticContext(repoPath)

	tech := a.detectTechnologies(ctx, fileAnalyses, depsText)
	if tech.IsDegraded() {
		degradations = append(degradations, "technologies: "+tech.Reason())
	}

	slog.Info("Repository analysis complete",
		logfields.Path(repoPath),
		logfields.Language(language),
		logfields.FileCount(analyzedCount),
		slog.Int("degraded_stages", len(degradations)))

	return &Analysis{
		FileStructure:   structure,
		Dependencies:    depsText,
		PrimaryLanguage: language,
		FileAnalyses:    fileAnalyses,
		SemanticContext: semanticContext,
		Technologies:    tech.Value(),
		FilesAnalyzed:   analyzedCount,
		Degradations:    degradations,
	}, nil
}

// analyzeFiles reads and summarizes the selected priority files. A failure
// summarizing one file degrades to a placeholder section for that file and
// the batch continues.
func (a *Analyzer) analyzeFiles(ctx context.Context, repoPath string) (string, int, []string) {
	selected := PriorityFiles(repoPath, a.limits.MaxFilesToAnalyze)

	var sections []string
	var degradations []string
	for _, rec := range selected {
		content := ReadFileSafe(rec.Path, a.limits.MaxFileSize)
		if content == "" || IsReadError(content) {
			degradations = append(degradations, fmt.Sprintf("file %s: unreadable", rec.Name))
			continue
		}

		summary, err := a.summarizer.SummarizeFile(ctx, rec.Name, content)
		if err != nil {
			slog.Warn("File analysis degraded",
				slog.String("file", rec.Name), logfields.Error(err))
			summary = fmt.Sprintf("[Analysis skipped - %s]", rec.Name)
			degradations = append(degradations, fmt.Sprintf("file %s: %v", rec.Name, err))
		}
		sections = append(sections, fmt.Sprintf("\n### %s\n%s", rec.Name, summary))
	}

	if len(sections) == 0 {
		return "No significant files analyzed.", 0, degradations
	}
	return strings.Join(sections, "\n"), len(sections), degradations
}

// detectTechnologies asks the model for a technology list over truncated
// slices of the analysis so far. Any failure degrades to the Unknown
// sentinel; it must never abort the overall analysis.
func (a *Analyzer) detectTechnologies(ctx context.Context, fileAnalyses, depsText string) foundation.Outcome[string] {
	tech, err := a.summarizer.DetectTechnologies(ctx,
		Truncate(fileAnalyses, techDetectionSliceBudget),
		Truncate(depsText, techDetectionSliceBudget))
	if err != nil {
		slog.Warn("Technology detection degraded", logfields.Error(err))
		return foundation.Degraded(UnknownLanguage, err.Error())
	}
	tech = strings.TrimSpace(tech)
	if tech == "" {
		return foundation.Degraded(UnknownLanguage, "empty model response")
	}
	return foundation.Good(tech)
}
