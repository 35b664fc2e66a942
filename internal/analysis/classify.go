package analysis

import (
	"path/filepath"
	"strings"
)

// skipDirs are directory names never descended into: version-control
// metadata, dependency caches, build output, and IDE metadata.
var skipDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	"env":          true,
	".git":         true,
	".vscode":      true,
	".idea":        true,
	"dist":         true,
	"build":        true,
	"target":       true,
	".next":        true,
}

// sourceExtensions is the recognized source-code extension set.
var sourceExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".go": true, ".rs": true, ".java": true, ".cpp": true, ".c": true,
	".h": true, ".cs": true, ".php": true, ".rb": true, ".swift": true,
	".kt": true, ".scala": true, ".r": true, ".m": true, ".sql": true,
}

// languageExtensions maps extensions to a primary-language label. Iteration
// order of this table breaks count ties arbitrarily; that nondeterminism is
// accepted.
var languageExtensions = map[string]string{
	".py":   "Python",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".go":   "Go",
	".rs":   "Rust",
	".java": "Java",
	".cpp":  "C++",
	".c":    "C",
	".cs":   "C#",
	".php":  "PHP",
	".rb":   "Ruby",
}

// priorityNames are filenames that conventionally mark a program entry point.
var priorityNames = map[string]bool{
	"main.py": true, "app.py": true, "__init__.py": true,
	"index.js": true, "main.js": true, "app.js": true,
	"index.ts": true, "main.go": true, "main.rs": true,
	"App.jsx": true, "App.tsx": true,
	"main.java": true, "Program.cs": true,
}

// manifestEntry couples a dependency manifest filename with its
// ecosystem label. Order matters only for deterministic iteration; when two
// filenames map to the same label the later one wins (known edge case).
type manifestEntry struct {
	filename  string
	ecosystem string
}

// manifestTable is the fixed manifest filename → ecosystem label table.
var manifestTable = []manifestEntry{
	{"package.json", "Node.js / JavaScript"},
	{"requirements.txt", "Python"},
	{"pyproject.toml", "Python"},
	{"Cargo.toml", "Rust"},
	{"go.mod", "Go"},
	{"pom.xml", "Java (Maven)"},
	{"build.gradle", "Java (Gradle)"},
	{"Gemfile", "Ruby"},
	{"composer.json", "PHP"},
}

// UnknownLanguage is the sentinel returned when no recognized source files exist.
const UnknownLanguage = "Unknown"

// shouldSkipDir reports whether a directory subtree is excluded from every
// walk. Hidden directories are skipped wholesale.
func shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || skipDirs[name]
}

// fileExtension returns the lowercased extension of name.
func fileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// isSourceFile reports whether name has a recognized source-code extension.
func isSourceFile(name string) bool {
	return sourceExtensions[fileExtension(name)]
}

// isPriorityFile reports whether name conventionally marks an entry point.
func isPriorityFile(name string) bool {
	return priorityNames[name]
}
