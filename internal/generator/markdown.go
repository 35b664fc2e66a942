package generator

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var mdParser = goldmark.New()

// CleanModelOutput strips a wrapping markdown code fence that models
// sometimes emit around the whole document.
func CleanModelOutput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown\n")
	s = strings.TrimPrefix(s, "```md\n")
	s = strings.TrimSuffix(s, "\n```")
	return strings.TrimSpace(s)
}

// HeadingCount parses doc as Markdown and counts its headings. Used to sanity
// check that generated output is a structured document rather than prose or
// an apology from the model.
func HeadingCount(doc string) int {
	source := []byte(doc)
	node := mdParser.Parser().Parse(text.NewReader(source))

	count := 0
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			count++
		}
		return ast.WalkContinue, nil
	})
	return count
}

// IsWellFormedReadme reports whether doc looks like a usable README: parses
// as Markdown with at least one heading.
func IsWellFormedReadme(doc string) bool {
	return strings.TrimSpace(doc) != "" && HeadingCount(doc) > 0
}
