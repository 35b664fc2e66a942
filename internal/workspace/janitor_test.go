package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepOnceRemovesStaleCheckouts(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "repo-aaaa")
	fresh := filepath.Join(dir, "repo-bbbb")
	other := filepath.Join(dir, "keepme")
	for _, d := range []string{stale, fresh, other} {
		require.NoError(t, os.Mkdir(d, 0o755))
	}

	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	j, err := NewJanitor(dir, time.Hour)
	require.NoError(t, err)
	defer j.Stop()

	removed, err := j.SweepOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoDirExists(t, stale)
	assert.DirExists(t, fresh, "fresh checkouts stay")
	assert.DirExists(t, other, "non-checkout directories are never touched")
}

func TestSweepOnceMissingWorkspace(t *testing.T) {
	j, err := NewJanitor(filepath.Join(t.TempDir(), "nope"), time.Hour)
	require.NoError(t, err)
	defer j.Stop()

	removed, err := j.SweepOnce()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSweepOnceIgnoresFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repo-file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	j, err := NewJanitor(dir, time.Hour)
	require.NoError(t, err)
	defer j.Stop()

	removed, err := j.SweepOnce()
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.FileExists(t, path)
}
