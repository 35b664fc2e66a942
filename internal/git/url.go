package git

import (
	"net/url"
	"strings"
)

// knownHosts lists the public forges accepted by ValidateRepoURL.
var knownHosts = map[string]bool{
	"github.com":    true,
	"gitlab.com":    true,
	"bitbucket.org": true,
}

// ValidateRepoURL reports whether raw looks like a clonable public
// repository URL: http(s) scheme, a recognized forge host, and at least an
// owner plus a repository path segment.
func ValidateRepoURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if !knownHosts[host] {
		return false
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 {
		return false
	}
	for _, s := range segments[:2] {
		if s == "" {
			return false
		}
	}
	return true
}

// RepoName extracts the repository display name from a URL: the last path
// segment with any trailing .git suffix stripped. Unparsable URLs yield
// "unknown-repo" rather than an error.
func RepoName(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "unknown-repo"
	}
	path := strings.TrimRight(parsed.Path, "/")
	name := path[strings.LastIndex(path, "/")+1:]
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return "unknown-repo"
	}
	return name
}
