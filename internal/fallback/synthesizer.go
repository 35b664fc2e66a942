// Package fallback deterministically builds a complete README from
// structure and dependency signals alone, with no model call and no I/O. It
// guarantees the pipeline always returns something usable even when the
// hosted model is unreachable or returns too little content.
package fallback

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/readmegen/internal/git"
)

// structureBlockBudget caps the project-structure code block.
const structureBlockBudget = 1000

var titleCaser = cases.Title(language.English)

// Synthesize builds a multi-section Markdown README from the repository URL,
// the formatted dependency text, and the structure listing. It is pure and
// total: any input triple, including all-empty strings, yields a non-empty
// well-formed document, and it never fails.
func Synthesize(repoURL, depsText, structureText string) string {
	name := git.RepoName(repoURL)
	title := headingTitle(name)

	matched := matchRules(depsText)
	projectType := projectTypeOf(matched)
	lang := languageOf(structureText)
	hasDocker := strings.Contains(strings.ToLower(structureText), "dockerfile")

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	// Description
	b.WriteString("## Description\n\n")
	fmt.Fprintf(&b, "%s is a %s", title, strings.ToLower(projectType))
	if lang != "Unknown" {
		fmt.Fprintf(&b, " written primarily in %s", lang)
	}
	b.WriteString(". This README was generated from the repository's structure and dependency manifests.\n\n")

	// Features
	b.WriteString("## Features\n\n")
	for _, f := range featuresOf(projectType, matched) {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\n")

	// Tech stack
	b.WriteString("## Tech Stack\n\n")
	for _, t := range techStackOf(lang, matched) {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	b.WriteString("\n")

	// Installation
	b.WriteString("## Installation\n\n")
	b.WriteString("```bash\n")
	fmt.Fprintf(&b, "git clone %s\n", cloneURL(repoURL))
	fmt.Fprintf(&b, "cd %s\n", name)
	for _, cmd := range installCmdsOf(lang, matched) {
		b.WriteString(cmd + "\n")
	}
	b.WriteString("```\n\n")

	// Docker (optional)
	if hasDocker {
		b.WriteString("## Docker\n\n")
		b.WriteString("```bash\n")
		fmt.Fprintf(&b, "docker build -t %s .\n", name)
		fmt.Fprintf(&b, "docker run %s\n", name)
		b.WriteString("```\n\n")
	}

	// Usage
	b.WriteString("## Usage\n\n")
	b.WriteString("```bash\n")
	for _, cmd := range runCmdsOf(lang, matched) {
		b.WriteString(cmd + "\n")
	}
	b.WriteString("```\n\n")

	// Project structure
	b.WriteString("## Project Structure\n\n")
	b.WriteString("```\n")
	if structure := truncate(structureText, structureBlockBudget); structure != "" {
		b.WriteString(structure + "\n")
	} else {
		b.WriteString("(structure unavailable)\n")
	}
	b.WriteString("```\n\n")

	// Testing
	b.WriteString("## Testing\n\n")
	b.WriteString("```bash\n")
	b.WriteString(testCmdOf(lang) + "\n")
	b.WriteString("```\n\n")

	// Contributing
	b.WriteString("## Contributing\n\n")
	b.WriteString("Contributions are welcome. Fork the repository, create a feature branch, and open a pull request.\n\n")

	// License
	b.WriteString("## License\n\n")
	b.WriteString("This project is licensed under the MIT License unless stated otherwise in the repository.\n")

	return b.String()
}

// headingTitle renders the URL-derived name for the document heading:
// separators become spaces, words are title-cased. The raw name (hyphens
// preserved) is still used everywhere a path or command needs it.
func headingTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return "Unknown Repo"
	}
	return titleCaser.String(strings.Join(words, " "))
}

// languageOf derives a coarse language label from manifest references in the
// structure listing.
func languageOf(structureText string) string {
	switch {
	case strings.Contains(structureText, "requirements.txt"):
		return "Python"
	case strings.Contains(structureText, "package.json"):
		return "JavaScript"
	default:
		return "Unknown"
	}
}

func projectTypeOf(matched []Rule) string {
	for _, r := range matched {
		if r.ProjectType != "" {
			return r.ProjectType
		}
	}
	return "Software Project"
}

func featuresOf(projectType string, matched []Rule) []string {
	features := []string{
		fmt.Sprintf("%s with a conventional project layout", projectType),
	}
	for _, r := range matched {
		features = append(features, fmt.Sprintf("Built on %s", r.Tech))
	}
	features = append(features, "Easy local setup with standard tooling")
	return features
}

func techStackOf(lang string, matched []Rule) []string {
	var stack []string
	if lang != "Unknown" {
		stack = append(stack, lang)
	}
	for _, r := range matched {
		stack = append(stack, r.Tech)
	}
	if len(stack) == 0 {
		stack = append(stack, "See repository manifests")
	}
	return stack
}

func installCmdsOf(lang string, matched []Rule) []string {
	seen := make(map[string]bool)
	var cmds []string
	for _, r := range matched {
		for _, c := range r.InstallCmds {
			if !seen[c] {
				seen[c] = true
				cmds = append(cmds, c)
			}
		}
	}
	if len(cmds) > 0 {
		return cmds
	}
	switch lang {
	case "Python":
		return []string{"pip install -r requirements.txt"}
	case "JavaScript":
		return []string{"npm install"}
	default:
		return []string{"# install dependencies with your toolchain of choice"}
	}
}

func runCmdsOf(lang string, matched []Rule) []string {
	seen := make(map[string]bool)
	var cmds []string
	for _, r := range matched {
		for _, c := range r.RunCmds {
			if !seen[c] {
				seen[c] = true
				cmds = append(cmds, c)
			}
		}
	}
	if len(cmds) > 0 {
		return cmds
	}
	switch lang {
	case "Python":
		return []string{"python main.py"}
	case "JavaScript":
		return []string{"npm start"}
	default:
		return []string{"# see repository documentation"}
	}
}

func testCmdOf(lang string) string {
	switch lang {
	case "Python":
		return "pytest"
	case "JavaScript":
		return "npm test"
	default:
		return "# run the project's test suite"
	}
}

// cloneURL normalizes the display URL for the git clone line.
func cloneURL(repoURL string) string {
	if repoURL == "" {
		return "<repository-url>"
	}
	return repoURL
}

func truncate(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars]
}
