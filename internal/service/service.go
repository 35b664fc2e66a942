// Package service orchestrates a README generation request end to end:
// URL validation, cache lookup, clone, analysis, generation, cache store,
// event publishing, and checkout cleanup on every path.
package service

import (
	"context"
	goerrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
	"git.home.luguber.info/inful/readmegen/internal/cache"
	"git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/events"
	"git.home.luguber.info/inful/readmegen/internal/generator"
	"git.home.luguber.info/inful/readmegen/internal/git"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/requestid"
)

// maxTechnologies caps the technologies list in response metadata.
const maxTechnologies = 5

// Cloner provides repository checkouts. *git.Client is the production
// implementation.
type Cloner interface {
	Clone(ctx context.Context, url string) (string, error)
	Cleanup(repoPath string)
}

// EventPublisher receives generation lifecycle events. *events.Publisher is
// the production implementation.
type EventPublisher interface {
	PublishGenerationCompleted(event events.GenerationCompleted)
}

// ReadmeResult is the service-level outcome of one generation request.
type ReadmeResult struct {
	Readme          string
	RepoName        string
	UsedFallback    bool
	FallbackReason  string
	ModelUsed       string
	PrimaryLanguage string
	Technologies    []string
	FilesAnalyzed   int
	Cached          bool
	Duration        time.Duration
}

// Service wires the pipeline components behind a single Generate call.
type Service struct {
	cloner    Cloner
	generator *generator.Generator
	limits    analysis.Limits
	store     cache.Store
	recorder  metrics.Recorder
	publisher EventPublisher
}

// Option configures optional collaborators.
type Option func(*Service)

// WithCache enables result caching. A nil store leaves caching off.
func WithCache(store cache.Store) Option {
	return func(s *Service) { s.store = store }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithPublisher sets the event publisher. Nil publishers are no-ops.
func WithPublisher(p EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// New constructs the service. The generator doubles as the analysis
// summarizer so file summaries and README generation share one model client.
func New(cloner Cloner, gen *generator.Generator, limits analysis.Limits, opts ...Option) *Service {
	s := &Service{
		cloner:    cloner,
		generator: gen,
		limits:    limits,
		recorder:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline for repoURL. The checkout is removed
// before returning on every path, success or failure.
func (s *Service) Generate(ctx context.Context, repoURL string) (*ReadmeResult, error) {
	start := time.Now()
	// The HTTP middleware stores the request ID in ctx; one is minted only
	// for callers without one (CLI one-shot mode).
	requestID := requestid.From(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	log := slog.With(logfields.RequestID(requestID), logfields.RepoURL(repoURL))

	if !git.ValidateRepoURL(repoURL) {
		s.recorder.IncRequestResult(metrics.ResultError)
		return nil, errors.InvalidRepoURL(repoURL)
	}
	repoName := git.RepoName(repoURL)

	if entry, ok := s.cacheGet(ctx, repoURL); ok {
		log.Info("Serving README from cache", logfields.RepoName(repoName))
		s.recorder.IncRequestResult(metrics.ResultSuccess)
		return &ReadmeResult{
			Readme:          entry.Readme,
			RepoName:        repoName,
			UsedFallback:    entry.UsedFallback,
			ModelUsed:       entry.ModelUsed,
			PrimaryLanguage: entry.PrimaryLanguage,
			Technologies:    entry.Technologies,
			FilesAnalyzed:   entry.FilesAnalyzed,
			Cached:          true,
			Duration:        time.Since(start),
		}, nil
	}

	log.Info("Starting README generation", logfields.RepoName(repoName))

	cloneStart := time.Now()
	repoPath, err := s.cloner.Clone(ctx, repoURL)
	s.recorder.ObserveCloneDuration(time.Since(cloneStart), err == nil)
	if err != nil {
		s.recorder.IncRequestResult(metrics.ResultError)
		// The git client already returns a categorized error.
		var rge *errors.ReadmeGenError
		if goerrors.As(err, &rge) {
			return nil, err
		}
		return nil, errors.CloneFailed(repoURL, err)
	}
	defer s.cloner.Cleanup(repoPath)

	analyzer := analysis.NewAnalyzer(s.generator, s.limits)
	a, err := analyzer.Analyze(ctx, repoPath)
	if err != nil {
		s.recorder.IncRequestResult(metrics.ResultError)
		return nil, errors.AnalysisFailed("repository", err)
	}
	for _, d := range a.Degradations {
		stage, _, _ := strings.Cut(d, ":")
		s.recorder.IncDegradedStage(strings.TrimSpace(stage))
	}

	gen := s.generator.GenerateReadme(ctx, repoURL, a)

	result := &ReadmeResult{
		Readme:          gen.Readme,
		RepoName:        repoName,
		UsedFallback:    gen.UsedFallback,
		FallbackReason:  gen.FallbackReason,
		ModelUsed:       s.generator.ModelName(),
		PrimaryLanguage: a.PrimaryLanguage,
		Technologies:    splitTechnologies(a.Technologies),
		FilesAnalyzed:   a.FilesAnalyzed,
		Duration:        time.Since(start),
	}

	s.cachePut(ctx, repoURL, result)

	if gen.UsedFallback {
		s.recorder.IncFallback(fallbackLabel(gen.FallbackReason))
		s.recorder.IncRequestResult(metrics.ResultFallback)
	} else {
		s.recorder.IncRequestResult(metrics.ResultSuccess)
	}
	s.recorder.ObserveRequestDuration(result.Duration)

	s.publishCompleted(events.GenerationCompleted{
		RequestID:       requestID,
		RepoURL:         repoURL,
		RepoName:        repoName,
		UsedFallback:    gen.UsedFallback,
		ModelUsed:       result.ModelUsed,
		PrimaryLanguage: a.PrimaryLanguage,
		FilesAnalyzed:   a.FilesAnalyzed,
		DurationMS:      result.Duration.Milliseconds(),
	})

	log.Info("README generation complete",
		logfields.RepoName(repoName),
		logfields.FileCount(a.FilesAnalyzed),
		slog.Bool("used_fallback", gen.UsedFallback),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))

	return result, nil
}

func (s *Service) publishCompleted(event events.GenerationCompleted) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishGenerationCompleted(event)
}

func (s *Service) cacheGet(ctx context.Context, repoURL string) (cache.Entry, bool) {
	if s.store == nil {
		return cache.Entry{}, false
	}
	entry, ok := s.store.Get(ctx, repoURL)
	s.recorder.IncCacheResult(ok)
	return entry, ok
}

func (s *Service) cachePut(ctx context.Context, repoURL string, r *ReadmeResult) {
	if s.store == nil {
		return
	}
	entry := cache.Entry{
		Readme:          r.Readme,
		UsedFallback:    r.UsedFallback,
		ModelUsed:       r.ModelUsed,
		PrimaryLanguage: r.PrimaryLanguage,
		Technologies:    r.Technologies,
		FilesAnalyzed:   r.FilesAnalyzed,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Put(ctx, repoURL, entry); err != nil {
		slog.Warn("Failed to cache README", logfields.RepoURL(repoURL), logfields.Error(err))
	}
}

// splitTechnologies turns the model's comma-separated technology string
// into a bounded list for response metadata.
func splitTechnologies(tech string) []string {
	parts := strings.Split(tech, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == maxTechnologies {
			break
		}
	}
	return out
}

// fallbackLabel maps free-form fallback reasons onto a small metric label set.
func fallbackLabel(reason string) string {
	switch {
	case strings.HasPrefix(reason, "model call failed"):
		return "model_error"
	case strings.HasPrefix(reason, "model output below minimum length"):
		return "short_output"
	case strings.HasPrefix(reason, "model output not well-formed"):
		return "malformed_output"
	default:
		return "other"
	}
}
