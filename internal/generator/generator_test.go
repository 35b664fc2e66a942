package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
	"git.home.luguber.info/inful/readmegen/internal/llm"
)

func sampleAnalysis() *analysis.Analysis {
	return &analysis.Analysis{
		FileStructure:   "main.py\nrequirements.txt",
		Dependencies:    "**Python:**\n```\nfastapi\n```",
		PrimaryLanguage: "Python",
		FileAnalyses:    "\n### main.py\nEntry point.",
		SemanticContext: "No existing README found. Generating from scratch.",
		Technologies:    "Python, FastAPI",
		FilesAnalyzed:   1,
	}
}

func TestGenerateReadmeSuccess(t *testing.T) {
	readme := "# Demo Project\n\n## Description\n\nA sample project that demonstrates things.\n"
	gen := New(llm.NewFake(readme), 50)

	result := gen.GenerateReadme(context.Background(), "https://github.com/acme/demo", sampleAnalysis())

	assert.False(t, result.UsedFallback)
	assert.Equal(t, strings.TrimSpace(readme), result.Readme)
}

func TestGenerateReadmeShortOutputFallsBack(t *testing.T) {
	// A 10-character response is below the minimum-length threshold.
	gen := New(llm.NewFake("# too tiny"), 50)

	result := gen.GenerateReadme(context.Background(), "https://github.com/acme/demo", sampleAnalysis())

	assert.True(t, result.UsedFallback)
	assert.Contains(t, result.FallbackReason, "minimum length")
	// Fallback output is still a complete document.
	assert.Contains(t, result.Readme, "# Demo")
	assert.Contains(t, result.Readme, "## Installation")
	assert.GreaterOrEqual(t, len(result.Readme), 50)
}

func TestGenerateReadmeModelErrorFallsBack(t *testing.T) {
	fake := llm.NewFake("")
	fake.Err = errors.New("endpoint unreachable")
	gen := New(fake, 50)

	result := gen.GenerateReadme(context.Background(), "https://github.com/acme/widget-tools.git", sampleAnalysis())

	assert.True(t, result.UsedFallback)
	assert.Contains(t, result.FallbackReason, "model call failed")
	assert.Contains(t, result.Readme, "# Widget Tools")
}

func TestGenerateReadmeUnstructuredOutputFallsBack(t *testing.T) {
	prose := strings.Repeat("I am sorry, I cannot generate a README for this repository. ", 3)
	gen := New(llm.NewFake(prose), 50)

	result := gen.GenerateReadme(context.Background(), "https://github.com/acme/demo", sampleAnalysis())

	assert.True(t, result.UsedFallback)
	assert.Contains(t, result.FallbackReason, "not well-formed")
}

func TestPromptBudgetsEnforced(t *testing.T) {
	fake := llm.NewFake("# Big Project\n\n## Description\n\nGenerated from a very large analysis bundle.\n")
	gen := New(fake, 50)

	big := strings.Repeat("x", 100000)
	a := &analysis.Analysis{
		FileStructure:   big,
		Dependencies:    big,
		FileAnalyses:    big,
		SemanticContext: big,
	}
	gen.GenerateReadme(context.Background(), "https://github.com/acme/big", a)

	require.Len(t, fake.Prompts, 1)
	prompt := fake.Prompts[0]
	// Template text plus the sum of all field budgets bounds the prompt.
	maxLen := len(readmeTemplate) + readmeAnalysisBudget + readmeDepsBudget +
		readmeStructureBudget + readmeContextBudget + 200
	assert.LessOrEqual(t, len(prompt), maxLen)
}

func TestSummarizeFileTruncatesContent(t *testing.T) {
	fake := llm.NewFake("Reads configuration.")
	gen := New(fake, 50)

	_, err := gen.SummarizeFile(context.Background(), "config.py", strings.Repeat("y", 50000))
	require.NoError(t, err)

	require.Len(t, fake.Prompts, 1)
	assert.LessOrEqual(t, len(fake.Prompts[0]), len(fileAnalysisTemplate)+fileContentBudget+100)
}

func TestDetectTechnologiesStripsLabel(t *testing.T) {
	fake := llm.NewFake("Technologies: Python, FastAPI, Docker")
	gen := New(fake, 50)

	got, err := gen.DetectTechnologies(context.Background(), "files", "deps")
	require.NoError(t, err)
	assert.Equal(t, "Python, FastAPI, Docker", got)
}

func TestCleanModelOutput(t *testing.T) {
	wrapped := "```markdown\n# Title\n\nBody\n```"
	assert.Equal(t, "# Title\n\nBody", CleanModelOutput(wrapped))
	assert.Equal(t, "# Title", CleanModelOutput("  # Title  "))
}

func TestHeadingCount(t *testing.T) {
	doc := "# Title\n\n## Section\n\ntext\n\n## Another\n"
	assert.Equal(t, 3, HeadingCount(doc))
	assert.Equal(t, 0, HeadingCount("just prose"))

	assert.True(t, IsWellFormedReadme(doc))
	assert.False(t, IsWellFormedReadme("just prose"))
	assert.False(t, IsWellFormedReadme("   "))
}
