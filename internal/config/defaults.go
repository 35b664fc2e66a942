package config

import "time"

// Default returns a configuration populated with working defaults. Callers
// that skip the YAML file (tests, the one-shot CLI path) start from here.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Model: ModelConfig{
			Name:        "gemini-2.5-flash",
			Temperature: 0.7,
			MaxTokens:   2048,
			TopP:        0.95,
			Timeout:     120 * time.Second,
		},
		Analysis: AnalysisConfig{
			MaxFileSize:       5000,
			MaxFilesToAnalyze: 10,
			MaxStructureFiles: 50,
			MinReadmeLength:   50,
		},
		Workspace: WorkspaceConfig{
			Dir:         "./workspace",
			SweepMaxAge: time.Hour,
		},
		Cache: CacheConfig{
			Enabled: false,
			Backend: CacheBackendMemory,
			Size:    256,
			TTL:     30 * time.Minute,
		},
		Events: EventsConfig{
			Subject: "readmegen.generated",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// applyDefaults fills zero values left after unmarshalling a partial file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Model.Name == "" {
		c.Model.Name = d.Model.Name
	}
	if c.Model.Temperature == 0 {
		c.Model.Temperature = d.Model.Temperature
	}
	if c.Model.MaxTokens == 0 {
		c.Model.MaxTokens = d.Model.MaxTokens
	}
	if c.Model.TopP == 0 {
		c.Model.TopP = d.Model.TopP
	}
	if c.Model.Timeout == 0 {
		c.Model.Timeout = d.Model.Timeout
	}
	if c.Analysis.MaxFileSize == 0 {
		c.Analysis.MaxFileSize = d.Analysis.MaxFileSize
	}
	if c.Analysis.MaxFilesToAnalyze == 0 {
		c.Analysis.MaxFilesToAnalyze = d.Analysis.MaxFilesToAnalyze
	}
	if c.Analysis.MaxStructureFiles == 0 {
		c.Analysis.MaxStructureFiles = d.Analysis.MaxStructureFiles
	}
	if c.Analysis.MinReadmeLength == 0 {
		c.Analysis.MinReadmeLength = d.Analysis.MinReadmeLength
	}
	if c.Workspace.Dir == "" {
		c.Workspace.Dir = d.Workspace.Dir
	}
	if c.Workspace.SweepMaxAge == 0 {
		c.Workspace.SweepMaxAge = d.Workspace.SweepMaxAge
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = d.Cache.Backend
	}
	if c.Cache.Size == 0 {
		c.Cache.Size = d.Cache.Size
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = d.Cache.TTL
	}
	if c.Events.Subject == "" {
		c.Events.Subject = d.Events.Subject
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}
