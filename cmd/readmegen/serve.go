package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
	"git.home.luguber.info/inful/readmegen/internal/cache"
	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/events"
	"git.home.luguber.info/inful/readmegen/internal/generator"
	"git.home.luguber.info/inful/readmegen/internal/git"
	"git.home.luguber.info/inful/readmegen/internal/llm"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/server/httpserver"
	"git.home.luguber.info/inful/readmegen/internal/service"
	"git.home.luguber.info/inful/readmegen/internal/workspace"
)

const shutdownTimeout = 30 * time.Second

// runServe wires the full pipeline and serves the HTTP API until a signal.
func runServe(cfg *config.Config, configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, store, publisher, opts, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if store != nil {
			if cerr := store.Close(); cerr != nil {
				slog.Warn("Cache close failed", "error", cerr)
			}
		}
		publisher.Close()
	}()

	janitor, err := workspace.NewJanitor(cfg.Workspace.Dir, cfg.Workspace.SweepMaxAge)
	if err != nil {
		return fmt.Errorf("failed to create workspace janitor: %w", err)
	}
	if err := janitor.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := janitor.Stop(); err != nil {
			slog.Warn("Janitor stop failed", "error", err)
		}
	}()

	// Config reloads apply logging changes live; pipeline changes need a restart.
	watcher, err := config.NewWatcher(configPath, func(next *config.Config) {
		setupLogging(next)
		slog.Info("Configuration reloaded, logging settings applied")
	})
	if err != nil {
		slog.Warn("Config watcher unavailable", "error", err)
	} else {
		if err := watcher.Start(ctx); err != nil {
			slog.Warn("Config watcher failed to start", "error", err)
		}
		defer watcher.Close()
	}

	srv := httpserver.New(cfg, svc, opts)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// buildService constructs the generation service and its collaborators.
func buildService(ctx context.Context, cfg *config.Config) (*service.Service, cache.Store, *events.Publisher, httpserver.Options, error) {
	var opts httpserver.Options

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Enabled {
		registry := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
		opts.MetricsHandler = metrics.HTTPHandler(registry)
	}

	client, err := llm.NewGeminiClient(ctx, cfg.Model.APIKey, cfg.Model.Name, llm.Params{
		Temperature: cfg.Model.Temperature,
		MaxTokens:   cfg.Model.MaxTokens,
		TopP:        cfg.Model.TopP,
	}, cfg.Model.Timeout)
	if err != nil {
		return nil, nil, nil, opts, fmt.Errorf("failed to create model client: %w", err)
	}
	gen := generator.New(llm.NewInstrumented(client, recorder), cfg.Analysis.MinReadmeLength)

	gitClient := git.NewClient(cfg.Workspace.Dir)
	if err := gitClient.EnsureWorkspace(); err != nil {
		return nil, nil, nil, opts, err
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, nil, nil, opts, fmt.Errorf("failed to create cache: %w", err)
	}

	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		return nil, nil, nil, opts, err
	}

	limits := analysis.Limits{
		MaxFileSize:       cfg.Analysis.MaxFileSize,
		MaxFilesToAnalyze: cfg.Analysis.MaxFilesToAnalyze,
		MaxStructureFiles: cfg.Analysis.MaxStructureFiles,
	}

	svc := service.New(gitClient, gen, limits,
		service.WithCache(store),
		service.WithRecorder(recorder),
		service.WithPublisher(publisher),
	)
	return svc, store, publisher, opts, nil
}
