package analysis

import (
	"os"
	"path/filepath"
)

// readmeExcerptBudget caps how much of an existing README is used as
// grounding context for generation.
const readmeExcerptBudget = 2000

// readmeCandidates are checked in order directly under the repository root.
var readmeCandidates = []string{"README.md", "README.txt", "README"}

// SemanticContext returns the leading excerpt of an existing README when one
// is present, used to ground generation in the project's prior
// self-description. When none exists the returned string says so; this
// function never fails.
func SemanticContext(root string) string {
	for _, name := range readmeCandidates {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		content := ReadFileSafe(path, readmeExcerptBudget)
		if IsReadError(content) {
			continue
		}
		return "Existing README found:\n" + content
	}
	return "No existing README found. Generating from scratch."
}
