package generator

import (
	"fmt"

	"git.home.luguber.info/inful/readmegen/internal/analysis"
)

// Character budgets applied to prompt fields before insertion. Nothing of
// unbounded length ever reaches the model.
const (
	fileContentBudget     = 2000
	readmeAnalysisBudget  = 2000
	readmeDepsBudget      = 800
	readmeStructureBudget = 800
	readmeContextBudget   = 500
)

const fileAnalysisTemplate = `You are a code analysis expert. Analyze the following file and extract key information.

File: %s
Content:
%s

Provide a brief summary (2-3 sentences) of:
1. What this file does
2. Its purpose in the project
3. Key functions or components

Keep your response concise and technical.`

const techDetectionTemplate = `Based on the following file content and names, identify all technologies, frameworks, and programming languages used:

Files analyzed:
%s

Dependencies:
%s

List all technologies in a simple comma-separated format.
Example: Python, FastAPI, React, PostgreSQL, Docker

Technologies:`

const readmeTemplate = `You are an expert technical writer specializing in creating comprehensive README.md files.

Create a professional README.md based on the following repository analysis:

**Repository URL:** %s

**Project Analysis:**
%s

**Dependencies Found:**
%s

**File Structure:**
%s

**Additional Context:**
%s

Generate a complete, professional README.md with these sections:

# [Project Title]
## Description
## Features
## Technologies Used
## Installation
## Usage
## Project Structure
## Contributing
## License

Use proper Markdown syntax with code blocks and language specifications.
Be concise but informative. Default the license to MIT if none was found.

Generate the README now:`

func fileAnalysisPrompt(name, content string) string {
	return fmt.Sprintf(fileAnalysisTemplate, name, analysis.Truncate(content, fileContentBudget))
}

func techDetectionPrompt(filesInfo, dependencies string) string {
	return fmt.Sprintf(techDetectionTemplate, filesInfo, dependencies)
}

func readmePrompt(repoURL string, a *analysis.Analysis) string {
	return fmt.Sprintf(readmeTemplate,
		repoURL,
		analysis.Truncate(a.FileAnalyses, readmeAnalysisBudget),
		analysis.Truncate(a.Dependencies, readmeDepsBudget),
		analysis.Truncate(a.FileStructure, readmeStructureBudget),
		analysis.Truncate(a.SemanticContext, readmeContextBudget))
}
