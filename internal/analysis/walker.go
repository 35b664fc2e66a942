package analysis

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// maxWalkDepth bounds traversal depth. filepath.WalkDir does not follow
// symbolic links, so cycles cannot occur through links; the depth bound
// additionally guards against pathological directory nesting.
const maxWalkDepth = 32

// FileRecord describes one file surfaced by a walk.
type FileRecord struct {
	Path string // absolute or root-joined path
	Name string // base name
}

// walkFiles enumerates files under root depth-first, applying the skip-dir
// rules before descending so nothing beneath a skipped directory is ever
// visited. The visit callback returns false to stop the walk early.
func walkFiles(root string, visit func(FileRecord) bool) error {
	root = filepath.Clean(root)
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if shouldSkipDir(d.Name()) || walkDepth(root, path) > maxWalkDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !visit(FileRecord{Path: path, Name: d.Name()}) {
			return fs.SkipAll
		}
		return nil
	})
}

// walkDepth counts path separators between root and path.
func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
