package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore is a bounded in-memory LRU response cache.
type MemoryStore struct {
	entries *lru.Cache[string, Entry]
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an LRU cache holding at most size entries.
func NewMemoryStore(size int, ttl time.Duration) (*MemoryStore, error) {
	entries, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{entries: entries, ttl: ttl, now: time.Now}, nil
}

func (m *MemoryStore) Get(_ context.Context, repoURL string) (Entry, bool) {
	entry, ok := m.entries.Get(repoURL)
	if !ok {
		return Entry{}, false
	}
	if m.ttl > 0 && m.now().Sub(entry.CreatedAt) > m.ttl {
		m.entries.Remove(repoURL)
		return Entry{}, false
	}
	return entry, true
}

func (m *MemoryStore) Put(_ context.Context, repoURL string, entry Entry) error {
	m.entries.Add(repoURL, entry)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
