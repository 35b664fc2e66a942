package analysis

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FileStructure collects up to maxFiles relative file paths under root and
// returns them newline-joined. Collection stops as soon as the cap is
// reached, so for large repositories the listing reflects whatever traversal
// order surfaces first rather than a representative sample. No ordering is
// guaranteed beyond traversal order.
//
// Entries with non-UTF8 names are skipped with a debug note; they must not
// abort the whole listing.
func FileStructure(root string, maxFiles int) string {
	if maxFiles <= 0 {
		return ""
	}
	var files []string

	_ = walkFiles(root, func(rec FileRecord) bool {
		rel, err := filepath.Rel(root, rec.Path)
		if err != nil {
			rel = rec.Path
		}
		if !utf8.ValidString(rel) {
			slog.Debug("Skipping non-UTF8 filename in structure listing")
			return true
		}
		files = append(files, rel)
		return len(files) < maxFiles
	})

	return strings.Join(files, "\n")
}
