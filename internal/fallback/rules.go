package fallback

import "strings"

// Rule matches a technology signal in free-form dependency text and carries
// everything the synthesizer needs to describe it: the label shown in the
// tech stack, an optional project-type classification, and the commands a
// reader would copy-paste. Keeping the rules in one ordered table makes the
// set independently testable and extensible.
type Rule struct {
	Pattern     string   // case-insensitive substring matched against dependency text
	Tech        string   // tech-stack label
	ProjectType string   // coarse classification; first match wins, empty means no opinion
	InstallCmds []string // shell lines for the installation section
	RunCmds     []string // shell lines for the usage section
}

// rules is evaluated in order; every matching rule contributes its tech tag
// and commands, while the project type comes from the first match that has
// one.
var rules = []Rule{
	{
		Pattern:     "fastapi",
		Tech:        "FastAPI",
		ProjectType: "Web API",
		InstallCmds: []string{"pip install -r requirements.txt"},
		RunCmds:     []string{"uvicorn main:app --reload"},
	},
	{
		Pattern:     "django",
		Tech:        "Django",
		ProjectType: "Web Application",
		InstallCmds: []string{"pip install -r requirements.txt"},
		RunCmds:     []string{"python manage.py runserver"},
	},
	{
		Pattern:     "flask",
		Tech:        "Flask",
		ProjectType: "Web API",
		InstallCmds: []string{"pip install -r requirements.txt"},
		RunCmds:     []string{"flask run"},
	},
	{
		Pattern:     "react",
		Tech:        "React",
		ProjectType: "Frontend Application",
		InstallCmds: []string{"npm install"},
		RunCmds:     []string{"npm start"},
	},
	{
		Pattern:     "vue",
		Tech:        "Vue.js",
		ProjectType: "Frontend Application",
		InstallCmds: []string{"npm install"},
		RunCmds:     []string{"npm start"},
	},
	{
		Pattern:     "angular",
		Tech:        "Angular",
		ProjectType: "Frontend Application",
		InstallCmds: []string{"npm install"},
		RunCmds:     []string{"npm start"},
	},
	{
		Pattern:     "express",
		Tech:        "Express",
		ProjectType: "Web Server",
		InstallCmds: []string{"npm install"},
		RunCmds:     []string{"npm start"},
	},
}

// matchRules returns every rule whose pattern occurs in depsText,
// case-insensitively, preserving table order.
func matchRules(depsText string) []Rule {
	lower := strings.ToLower(depsText)
	var matched []Rule
	for _, r := range rules {
		if strings.Contains(lower, r.Pattern) {
			matched = append(matched, r)
		}
	}
	return matched
}
