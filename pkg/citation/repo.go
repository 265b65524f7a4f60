package citation

import (
	"context"
	"regexp"
	"strings"

	"github.com/zonca/citegen/pkg/integrations/pypi"
)

var githubRepoRE = regexp.MustCompile(`https?://github\.com/([^/\s]+)/([^/\s#]+)`)

// homepageKeys are tried against project_urls in order, case-sensitively,
// before falling back to the legacy home_page field.
var homepageKeys = []string{"Homepage", "homepage", "Home", "home", "Source"}

// CitationFileFinder locates a citation file in a source repository.
// Implementations probe the forge and must never fail: an unreachable host
// reads the same as a repository without a citation file.
type CitationFileFinder interface {
	FindCitationFile(ctx context.Context, repoURL string) string
}

// NormalizeGitHubRepo extracts a canonical https://github.com/<owner>/<repo>
// URL from url, trimming a trailing ".git" suffix from the repository
// segment. Returns "" when url does not reference a GitHub repository.
func NormalizeGitHubRepo(url string) string {
	m := githubRepoRE.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	owner, repo := m[1], strings.TrimSuffix(m[2], ".git")
	return "https://github.com/" + owner + "/" + repo
}

// ExtractRepoPath reduces a GitHub repository URL to its "owner/repo" path.
// Returns "" when fewer than two path segments remain.
func ExtractRepoPath(repoURL string) string {
	path := strings.TrimPrefix(repoURL, "https://github.com/")
	path = strings.TrimPrefix(path, "http://github.com/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return parts[0] + "/" + parts[1]
}

// FindGitHubRepo locates the package's source repository. Candidates are
// tried in a fixed order so the result is reproducible: every project_urls
// value in publisher order, then home_page, then project_url, and finally a
// scan of the long description text.
func FindGitHubRepo(info *pypi.PackageInfo) string {
	candidates := append([]string{}, info.ProjectURLs.Values()...)
	for _, v := range []string{info.HomePage, info.ProjectURL} {
		if v != "" {
			candidates = append(candidates, v)
		}
	}
	for _, candidate := range candidates {
		if repo := NormalizeGitHubRepo(candidate); repo != "" {
			return repo
		}
	}
	return NormalizeGitHubRepo(info.Description)
}

// PrimaryHomepage picks the package homepage from project_urls using the
// fixed homepageKeys order, falling back to the legacy home_page field.
func PrimaryHomepage(info *pypi.PackageInfo) string {
	for _, key := range homepageKeys {
		if v, ok := info.ProjectURLs.Get(key); ok {
			return v
		}
	}
	return info.HomePage
}

// FindAttributionLink locates a citation link for the package. Strategies
// are tried in order until one yields a link: an explicit project_urls entry
// whose key mentions citing, then a citation file probed in the source
// repository. A nil finder skips the probing strategy.
func FindAttributionLink(ctx context.Context, info *pypi.PackageInfo, finder CitationFileFinder) string {
	strategies := []func() string{
		func() string { return citationProjectURL(info) },
		func() string {
			if finder == nil {
				return ""
			}
			repo := FindGitHubRepo(info)
			if repo == "" {
				return ""
			}
			return finder.FindCitationFile(ctx, repo)
		},
	}
	for _, try := range strategies {
		if link := try(); link != "" {
			return link
		}
	}
	return ""
}

func citationProjectURL(info *pypi.PackageInfo) string {
	for _, key := range info.ProjectURLs.Keys() {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "cite") || strings.Contains(lower, "citation") {
			v, _ := info.ProjectURLs.Get(key)
			return v
		}
	}
	return ""
}
