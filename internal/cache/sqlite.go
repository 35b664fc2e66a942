package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite. Use ":memory:" for an
// in-memory database, or a file path for persistent storage.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.RWMutex
	now func() time.Time
}

// NewSQLiteStore opens (and if necessary initializes) the cache database.
func NewSQLiteStore(dbPath string, ttl time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db, ttl: ttl, now: time.Now}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readme_cache (
		repo_url TEXT PRIMARY KEY,
		readme TEXT NOT NULL,
		used_fallback INTEGER NOT NULL,
		model_used TEXT NOT NULL,
		primary_language TEXT NOT NULL DEFAULT '',
		technologies TEXT NOT NULL DEFAULT '[]',
		files_analyzed INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_created_at ON readme_cache(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, repoURL string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT readme, used_fallback, model_used, primary_language, technologies, files_analyzed, created_at FROM readme_cache WHERE repo_url = ?",
		repoURL)

	var entry Entry
	var usedFallback int
	var technologies string
	var createdAt int64
	if err := row.Scan(&entry.Readme, &usedFallback, &entry.ModelUsed,
		&entry.PrimaryLanguage, &technologies, &entry.FilesAnalyzed, &createdAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			// Treat storage trouble as a miss; generation still works.
			return Entry{}, false
		}
		return Entry{}, false
	}
	entry.UsedFallback = usedFallback != 0
	entry.CreatedAt = time.Unix(createdAt, 0)
	if technologies != "" {
		if err := json.Unmarshal([]byte(technologies), &entry.Technologies); err != nil {
			entry.Technologies = nil
		}
	}

	if s.ttl > 0 && s.now().Sub(entry.CreatedAt) > s.ttl {
		return Entry{}, false
	}
	return entry, true
}

func (s *SQLiteStore) Put(ctx context.Context, repoURL string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	usedFallback := 0
	if entry.UsedFallback {
		usedFallback = 1
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	technologies, err := json.Marshal(entry.Technologies)
	if err != nil {
		return fmt.Errorf("encode technologies: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO readme_cache (repo_url, readme, used_fallback, model_used, primary_language, technologies, files_analyzed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(repo_url) DO UPDATE SET
		   readme = excluded.readme,
		   used_fallback = excluded.used_fallback,
		   model_used = excluded.model_used,
		   primary_language = excluded.primary_language,
		   technologies = excluded.technologies,
		   files_analyzed = excluded.files_analyzed,
		   created_at = excluded.created_at`,
		repoURL, entry.Readme, usedFallback, entry.ModelUsed,
		entry.PrimaryLanguage, string(technologies), entry.FilesAnalyzed, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
