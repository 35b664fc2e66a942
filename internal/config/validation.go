package config

import (
	"fmt"
	"log/slog"
)

// Validate checks the configuration for values that would make the service
// unusable. Validation runs after defaults have been applied.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model.name is required")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("model.temperature must be between 0 and 2, got %g", c.Model.Temperature)
	}
	if c.Model.TopP <= 0 || c.Model.TopP > 1 {
		return fmt.Errorf("model.top_p must be in (0, 1], got %g", c.Model.TopP)
	}
	if c.Model.MaxTokens < 1 {
		return fmt.Errorf("model.max_tokens must be positive, got %d", c.Model.MaxTokens)
	}
	if c.Analysis.MaxFilesToAnalyze < 1 {
		return fmt.Errorf("analysis.max_files_to_analyze must be positive, got %d", c.Analysis.MaxFilesToAnalyze)
	}
	if c.Analysis.MaxStructureFiles < 1 {
		return fmt.Errorf("analysis.max_structure_files must be positive, got %d", c.Analysis.MaxStructureFiles)
	}
	if c.Analysis.MaxFileSize < 1 {
		return fmt.Errorf("analysis.max_file_size must be positive, got %d", c.Analysis.MaxFileSize)
	}
	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case CacheBackendMemory:
			if c.Cache.Size < 1 {
				return fmt.Errorf("cache.size must be positive for the memory backend, got %d", c.Cache.Size)
			}
		case CacheBackendSQLite:
			if c.Cache.Path == "" {
				return fmt.Errorf("cache.path is required for the sqlite backend")
			}
		default:
			return fmt.Errorf("cache.backend must be memory or sqlite, got %q", c.Cache.Backend)
		}
	}
	if c.Events.Enabled && c.Events.NATSURL == "" {
		return fmt.Errorf("events.nats_url is required when events are enabled")
	}
	return nil
}

// SlogLevel maps the configured level string to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
