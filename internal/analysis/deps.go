package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// manifestReadBudget caps how much of each dependency manifest is read.
const manifestReadBudget = 3000

// dependencyFenceBudget caps each ecosystem's content when rendered as a
// fenced block for prompting.
const dependencyFenceBudget = 500

// DependencyFiles locates known manifest files directly under root (not
// recursively) and returns their truncated contents keyed by ecosystem
// label. Unreadable files yield an inline error marker rather than failing.
// If two manifest filenames map to the same label, the later table entry
// wins, a known edge case, not guaranteed behavior. The operation is
// read-only and idempotent.
func DependencyFiles(root string) map[string]string {
	found := make(map[string]string)

	for _, entry := range manifestTable {
		path := filepath.Join(root, entry.filename)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		found[entry.ecosystem] = ReadFileSafe(path, manifestReadBudget)
	}

	return found
}

// FormatDependencies renders each ecosystem's manifest content as a fenced
// block truncated to the per-fence budget, suitable for prompt insertion.
func FormatDependencies(deps map[string]string) string {
	if len(deps) == 0 {
		return "No dependency files detected."
	}

	var formatted []string
	rendered := make(map[string]bool, len(deps))
	for _, entry := range manifestTable {
		content, ok := deps[entry.ecosystem]
		if !ok || rendered[entry.ecosystem] {
			continue
		}
		// Each label rendered once even when two filenames share it.
		rendered[entry.ecosystem] = true
		formatted = append(formatted, fmt.Sprintf("\n**%s:**\n```\n%s\n```",
			entry.ecosystem, Truncate(content, dependencyFenceBudget)))
	}
	return strings.Join(formatted, "\n")
}

// Truncate returns s cut to at most maxChars bytes, never splitting a
// multi-byte rune at the boundary.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if len(s) <= maxChars {
		return s
	}
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
