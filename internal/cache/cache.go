// Package cache provides an optional per-URL response cache for generated
// READMEs. Two backends exist: a bounded in-memory LRU and a SQLite store
// that survives restarts. Entries carry a TTL; expired entries are treated
// as misses.
package cache

import (
	"context"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/config"
)

// Entry is one cached generation result. It carries the response metadata
// too, so cached responses match fresh ones field for field.
type Entry struct {
	Readme          string    `json:"readme"`
	UsedFallback    bool      `json:"used_fallback"`
	ModelUsed       string    `json:"model_used"`
	PrimaryLanguage string    `json:"primary_language"`
	Technologies    []string  `json:"technologies"`
	FilesAnalyzed   int       `json:"files_analyzed"`
	CreatedAt       time.Time `json:"created_at"`
}

// Store is the response cache contract. Get returns (entry, false) on a
// miss or expiry; implementations never return errors for misses.
type Store interface {
	Get(ctx context.Context, repoURL string) (Entry, bool)
	Put(ctx context.Context, repoURL string, entry Entry) error
	Close() error
}

// New constructs the configured backend. A disabled cache yields nil, which
// callers treat as "no cache".
func New(cfg config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch cfg.Backend {
	case config.CacheBackendSQLite:
		return NewSQLiteStore(cfg.Path, cfg.TTL)
	default:
		return NewMemoryStore(cfg.Size, cfg.TTL)
	}
}
