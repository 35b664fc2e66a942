package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
	"git.home.luguber.info/inful/readmegen/internal/cache"
	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/events"
	"git.home.luguber.info/inful/readmegen/internal/generator"
	"git.home.luguber.info/inful/readmegen/internal/llm"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/requestid"
)

// fakeCloner serves a prepared directory instead of cloning.
type fakeCloner struct {
	dir      string
	err      error
	cleanups []string
}

func (f *fakeCloner) Clone(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.dir, nil
}

func (f *fakeCloner) Cleanup(repoPath string) {
	f.cleanups = append(f.cleanups, repoPath)
}

// countingRecorder tracks metric calls for assertions.
type countingRecorder struct {
	metrics.NoopRecorder
	mu         sync.Mutex
	results    map[metrics.ResultLabel]int
	fallbacks  map[string]int
	cacheHits  int
	cacheMiss  int
	modelCalls int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		results:   map[metrics.ResultLabel]int{},
		fallbacks: map[string]int{},
	}
}

func (c *countingRecorder) IncRequestResult(r metrics.ResultLabel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[r]++
}

func (c *countingRecorder) IncFallback(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallbacks[reason]++
}

func (c *countingRecorder) ObserveModelCallDuration(_ string, _ time.Duration, _ bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modelCalls++
}

func (c *countingRecorder) IncCacheResult(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.cacheHits++
	} else {
		c.cacheMiss++
	}
}

func writeFixtureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"main.py":          "from fastapi import FastAPI\napp = FastAPI()\n",
		"requirements.txt": "fastapi==0.110.0\nuvicorn==0.29.0\n",
		"utils.py":         "def helper():\n    return 1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func testLimits() analysis.Limits {
	return analysis.Limits{MaxFileSize: 5000, MaxFilesToAnalyze: 10, MaxStructureFiles: 50}
}

const goodReadme = `# Widget Tools

## Description

A FastAPI service for managing widgets across environments.

## Installation

pip install -r requirements.txt
`

func TestGenerateSuccess(t *testing.T) {
	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	// Prompt order: one summary per priority file, tech detection, README.
	fake.Responses = []string{
		"Entry point defining the FastAPI app.",
		"Helper utilities.",
		"Python, FastAPI, Uvicorn",
		goodReadme,
	}
	rec := newCountingRecorder()
	svc := New(cloner, generator.New(fake, 50), testLimits(), WithRecorder(rec))

	result, err := svc.Generate(context.Background(), "https://github.com/acme/widget-tools")
	require.NoError(t, err)

	assert.False(t, result.UsedFallback)
	assert.Equal(t, "widget-tools", result.RepoName)
	assert.Equal(t, "Python", result.PrimaryLanguage)
	assert.Equal(t, []string{"Python", "FastAPI", "Uvicorn"}, result.Technologies)
	assert.Equal(t, 2, result.FilesAnalyzed)
	assert.Equal(t, "fake-model", result.ModelUsed)
	assert.Contains(t, result.Readme, "# Widget Tools")

	assert.Len(t, cloner.cleanups, 1, "checkout must be cleaned up")
	assert.Equal(t, 1, rec.results[metrics.ResultSuccess])
}

func TestGenerateObservesModelCalls(t *testing.T) {
	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	// Two file summaries, tech detection, README: four model calls total.
	fake.Responses = []string{"s1", "s2", "Python", goodReadme}
	rec := newCountingRecorder()
	svc := New(cloner, generator.New(llm.NewInstrumented(fake, rec), 50), testLimits(),
		WithRecorder(rec))

	_, err := svc.Generate(context.Background(), "https://github.com/acme/widget-tools")
	require.NoError(t, err)

	assert.Len(t, fake.Prompts, 4)
	assert.Equal(t, 4, rec.modelCalls, "every model call must be observed")
}

func TestGenerateInvalidURL(t *testing.T) {
	svc := New(&fakeCloner{}, generator.New(llm.NewFake("x"), 50), testLimits())

	_, err := svc.Generate(context.Background(), "https://github.com/onlyuser")
	require.Error(t, err)
	assert.True(t, rerrors.IsCategory(err, rerrors.CategoryValidation))
}

func TestGenerateCloneFailure(t *testing.T) {
	cloner := &fakeCloner{err: errors.New("remote hung up")}
	rec := newCountingRecorder()
	svc := New(cloner, generator.New(llm.NewFake("x"), 50), testLimits(), WithRecorder(rec))

	_, err := svc.Generate(context.Background(), "https://github.com/acme/widget-tools")
	require.Error(t, err)
	assert.True(t, rerrors.IsCategory(err, rerrors.CategoryGit))
	assert.Empty(t, cloner.cleanups, "nothing to clean up when clone fails")
	assert.Equal(t, 1, rec.results[metrics.ResultError])
}

func TestGenerateCloneErrorNotDoubleWrapped(t *testing.T) {
	// The production git client returns an already categorized error; the
	// service must pass it through instead of wrapping it again.
	url := "https://github.com/acme/widget-tools"
	cloner := &fakeCloner{err: rerrors.CloneFailed(url, errors.New("remote hung up"))}
	svc := New(cloner, generator.New(llm.NewFake("x"), 50), testLimits())

	_, err := svc.Generate(context.Background(), url)
	require.Error(t, err)
	assert.True(t, rerrors.IsCategory(err, rerrors.CategoryGit))
	assert.Equal(t, 1, strings.Count(err.Error(), "repository clone failed"))
}

func TestGenerateModelFailureFallsBack(t *testing.T) {
	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	fake.Err = errors.New("model unavailable")
	rec := newCountingRecorder()
	svc := New(cloner, generator.New(fake, 50), testLimits(), WithRecorder(rec))

	result, err := svc.Generate(context.Background(), "https://github.com/acme/widget-tools")
	require.NoError(t, err, "model failure degrades, never errors")

	assert.True(t, result.UsedFallback)
	assert.True(t, strings.HasPrefix(result.Readme, "# Widget Tools"), "fallback heading from repo name")
	assert.Contains(t, result.Readme, "uvicorn main:app --reload")
	assert.Len(t, cloner.cleanups, 1)
	assert.Equal(t, 1, rec.results[metrics.ResultFallback])
	assert.Equal(t, 1, rec.fallbacks["model_error"])
}

func TestGenerateShortOutputFallsBack(t *testing.T) {
	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	fake.Responses = []string{
		"Summary one.",
		"Summary two.",
		"Python",
		"# Short", // below minimum README length
	}
	rec := newCountingRecorder()
	svc := New(cloner, generator.New(fake, 50), testLimits(), WithRecorder(rec))

	result, err := svc.Generate(context.Background(), "https://github.com/acme/widget-tools")
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, 1, rec.fallbacks["short_output"])
}

func TestGenerateCacheHit(t *testing.T) {
	store, err := cache.NewMemoryStore(8, time.Hour)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	url := "https://github.com/acme/widget-tools"
	require.NoError(t, store.Put(ctx, url, cache.Entry{
		Readme:          "# Widget Tools\n\nCached copy.",
		ModelUsed:       "fake-model",
		PrimaryLanguage: "Python",
		Technologies:    []string{"Python", "FastAPI"},
		FilesAnalyzed:   2,
		CreatedAt:       time.Now(),
	}))

	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	rec := newCountingRecorder()
	svc := New(cloner, generator.New(llm.NewFake("x"), 50), testLimits(),
		WithCache(store), WithRecorder(rec))

	result, err := svc.Generate(ctx, url)
	require.NoError(t, err)

	assert.True(t, result.Cached)
	assert.Equal(t, "# Widget Tools\n\nCached copy.", result.Readme)
	assert.Empty(t, cloner.cleanups, "cache hit never clones")
	assert.Equal(t, 1, rec.cacheHits)

	// Cached responses carry the same metadata as fresh ones.
	assert.Equal(t, "Python", result.PrimaryLanguage)
	assert.Equal(t, []string{"Python", "FastAPI"}, result.Technologies)
	assert.Equal(t, 2, result.FilesAnalyzed)
}

func TestGenerateCacheRoundTripKeepsMetadata(t *testing.T) {
	store, err := cache.NewMemoryStore(8, time.Hour)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	url := "https://github.com/acme/widget-tools"

	fake := llm.NewFake("")
	fake.Responses = []string{"s1", "s2", "Python, FastAPI, Uvicorn", goodReadme}
	svc := New(&fakeCloner{dir: writeFixtureRepo(t)}, generator.New(fake, 50), testLimits(),
		WithCache(store))

	fresh, err := svc.Generate(ctx, url)
	require.NoError(t, err)
	require.False(t, fresh.Cached)

	cached, err := svc.Generate(ctx, url)
	require.NoError(t, err)
	require.True(t, cached.Cached)

	assert.Equal(t, fresh.PrimaryLanguage, cached.PrimaryLanguage)
	assert.Equal(t, fresh.Technologies, cached.Technologies)
	assert.Equal(t, fresh.FilesAnalyzed, cached.FilesAnalyzed)
	assert.Equal(t, fresh.Readme, cached.Readme)
}

func TestGenerateStoresInCache(t *testing.T) {
	store, err := cache.NewMemoryStore(8, time.Hour)
	require.NoError(t, err)
	defer store.Close()

	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	fake.Responses = []string{"s1", "s2", "Python", goodReadme}
	svc := New(cloner, generator.New(fake, 50), testLimits(), WithCache(store))

	ctx := context.Background()
	url := "https://github.com/acme/widget-tools"
	_, err = svc.Generate(ctx, url)
	require.NoError(t, err)

	entry, ok := store.Get(ctx, url)
	require.True(t, ok)
	assert.Contains(t, entry.Readme, "# Widget Tools")
	assert.Equal(t, "fake-model", entry.ModelUsed)
}

type capturingPublisher struct {
	events []events.GenerationCompleted
}

func (p *capturingPublisher) PublishGenerationCompleted(event events.GenerationCompleted) {
	p.events = append(p.events, event)
}

func TestGenerateUsesRequestIDFromContext(t *testing.T) {
	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	fake.Responses = []string{"s1", "s2", "Python", goodReadme}
	pub := &capturingPublisher{}
	svc := New(cloner, generator.New(fake, 50), testLimits(), WithPublisher(pub))

	ctx := requestid.With(context.Background(), "req-123")
	_, err := svc.Generate(ctx, "https://github.com/acme/widget-tools")
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "req-123", pub.events[0].RequestID,
		"pipeline must reuse the ID assigned by the HTTP middleware")
}

func TestGenerateMintsRequestIDWithoutContext(t *testing.T) {
	cloner := &fakeCloner{dir: writeFixtureRepo(t)}
	fake := llm.NewFake("")
	fake.Responses = []string{"s1", "s2", "Python", goodReadme}
	pub := &capturingPublisher{}
	svc := New(cloner, generator.New(fake, 50), testLimits(), WithPublisher(pub))

	_, err := svc.Generate(context.Background(), "https://github.com/acme/widget-tools")
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	assert.NotEmpty(t, pub.events[0].RequestID)
}

func TestSplitTechnologies(t *testing.T) {
	got := splitTechnologies("Python, FastAPI, Uvicorn, Docker, Redis, Celery, Postgres")
	assert.Equal(t, []string{"Python", "FastAPI", "Uvicorn", "Docker", "Redis"}, got)

	assert.Empty(t, splitTechnologies(""))
	assert.Equal(t, []string{"Unknown"}, splitTechnologies("Unknown"))
}
