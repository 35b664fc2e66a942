package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/generator"
	"git.home.luguber.info/inful/readmegen/internal/git"
	"git.home.luguber.info/inful/readmegen/internal/llm"
	"git.home.luguber.info/inful/readmegen/internal/service"
)

// runGenerate produces one README and writes it to output (or stdout).
func runGenerate(cfg *config.Config, repoURL, output string) error {
	ctx := context.Background()

	client, err := llm.NewGeminiClient(ctx, cfg.Model.APIKey, cfg.Model.Name, llm.Params{
		Temperature: cfg.Model.Temperature,
		MaxTokens:   cfg.Model.MaxTokens,
		TopP:        cfg.Model.TopP,
	}, cfg.Model.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}

	gitClient := git.NewClient(cfg.Workspace.Dir)
	if err := gitClient.EnsureWorkspace(); err != nil {
		return err
	}

	limits := analysis.Limits{
		MaxFileSize:       cfg.Analysis.MaxFileSize,
		MaxFilesToAnalyze: cfg.Analysis.MaxFilesToAnalyze,
		MaxStructureFiles: cfg.Analysis.MaxStructureFiles,
	}
	svc := service.New(gitClient, generator.New(client, cfg.Analysis.MinReadmeLength), limits)

	result, err := svc.Generate(ctx, repoURL)
	if err != nil {
		return err
	}

	if result.UsedFallback {
		slog.Warn("Model generation degraded, README synthesized from analysis",
			"reason", result.FallbackReason)
	}

	if output == "" {
		fmt.Println(result.Readme)
		return nil
	}
	if err := os.WriteFile(output, []byte(result.Readme), 0o644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	slog.Info("README written", "path", output, "repo", result.RepoName)
	return nil
}
