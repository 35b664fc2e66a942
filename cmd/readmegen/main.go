package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Serve struct {
		Host string `help:"Override listen host"`
		Port int    `help:"Override listen port"`
	} `cmd:"" help:"Start the README generation HTTP API"`

	Generate struct {
		URL    string `arg:"" help:"Repository URL to generate a README for"`
		Output string `short:"o" help:"Write the README to a file instead of stdout"`
	} `cmd:"" help:"Generate a README for a single repository and exit"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	switch ctx.Command() {
	case "serve":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Serve.Host != "" {
			cfg.Server.Host = CLI.Serve.Host
		}
		if CLI.Serve.Port != 0 {
			cfg.Server.Port = CLI.Serve.Port
		}
		if err := runServe(cfg, CLI.Config); err != nil {
			slog.Error("Serve failed", "error", err)
			os.Exit(1)
		}
	case "generate <url>":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runGenerate(cfg, CLI.Generate.URL, CLI.Generate.Output); err != nil {
			slog.Error("Generate failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration written to %s\n", CLI.Config)
	case "version":
		fmt.Printf("readmegen %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
	}
}

// loadConfig loads the config file and applies logging setup from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	level := cfg.SlogLevel()
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
