// Package config loads and validates the readmegen configuration. The
// configuration is constructed once at process start and passed explicitly
// into every component that needs it; no package keeps ambient global state.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Model     ModelConfig     `yaml:"model"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Cache     CacheConfig     `yaml:"cache"`
	Events    EventsConfig    `yaml:"events"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig configures the HTTP API surface.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ModelConfig configures the hosted language model collaborator.
type ModelConfig struct {
	Name        string        `yaml:"name"`
	APIKey      string        `yaml:"api_key"` // usually ${GEMINI_API_KEY} expanded from env
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	TopP        float64       `yaml:"top_p"`
	Timeout     time.Duration `yaml:"timeout"`
}

// AnalysisConfig bounds the repository analysis pipeline.
type AnalysisConfig struct {
	MaxFileSize        int `yaml:"max_file_size"`         // per-file character budget
	MaxFilesToAnalyze  int `yaml:"max_files_to_analyze"`  // priority file selection cap
	MaxStructureFiles  int `yaml:"max_structure_files"`   // structure listing cap
	MinReadmeLength    int `yaml:"min_readme_length"`     // below this, fall back to synthesizer
}

// WorkspaceConfig configures where repository checkouts live.
type WorkspaceConfig struct {
	Dir         string        `yaml:"dir"`
	SweepMaxAge time.Duration `yaml:"sweep_max_age"` // checkouts older than this are janitor-swept
}

// CacheBackend enumerates supported response cache backends.
type CacheBackend string

const (
	CacheBackendMemory CacheBackend = "memory"
	CacheBackendSQLite CacheBackend = "sqlite"
)

// CacheConfig configures the per-URL response cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Backend CacheBackend  `yaml:"backend"`
	Path    string        `yaml:"path"` // sqlite file path, ":memory:" allowed
	Size    int           `yaml:"size"` // memory backend entry cap
	TTL     time.Duration `yaml:"ttl"`
}

// EventsConfig configures optional NATS event publishing.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load loads configuration from the specified file. Environment variables
// referenced in the YAML (e.g. ${GEMINI_API_KEY}) are expanded after an
// optional .env file has been loaded.
func Load(configPath string) (*Config, error) {
	// Load .env if present; missing files are fine.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expandedData := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := `# readmegen configuration
server:
  host: 0.0.0.0
  port: 8000

model:
  name: gemini-2.5-flash
  api_key: ${GEMINI_API_KEY}
  temperature: 0.7
  max_tokens: 2048
  top_p: 0.95
  timeout: 120s

analysis:
  max_file_size: 5000
  max_files_to_analyze: 10
  max_structure_files: 50
  min_readme_length: 50

workspace:
  dir: ./workspace
  sweep_max_age: 1h

cache:
  enabled: false
  backend: memory
  size: 256
  ttl: 30m

events:
  enabled: false
  nats_url: nats://localhost:4222
  subject: readmegen.generated

logging:
  level: info
  format: text

metrics:
  enabled: true
`
	if err := os.WriteFile(configPath, []byte(example), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
