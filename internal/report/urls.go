package report

import (
	"net/url"
	"strings"
)

// repoBaseURL resolves the web URL of the repository an issue belongs to.
// An explicit repo wins; otherwise the issue URL is trimmed back to the
// repository root.
func repoBaseURL(repo, issueURL string) string {
	repo = strings.TrimSuffix(strings.TrimSpace(repo), "/")
	if repo == "" {
		return baseFromIssueURL(issueURL)
	}
	if strings.Contains(repo, "://") {
		return strings.TrimSuffix(repo, ".git")
	}

	switch strings.Count(repo, "/") {
	case 1:
		return "https://github.com/" + repo
	case 2:
		return "https://" + repo
	default:
		return baseFromIssueURL(issueURL)
	}
}

// baseFromIssueURL strips the /issues/N or /pull/N suffix from an issue URL.
func baseFromIssueURL(issueURL string) string {
	for _, marker := range []string{"/issues/", "/pull/"} {
		if i := strings.LastIndex(issueURL, marker); i > 0 {
			return issueURL[:i]
		}
	}
	return ""
}

// labelURL links to the issues carrying a label.
func labelURL(base, name string) string {
	if base == "" {
		return ""
	}
	return base + "/labels/" + url.PathEscape(name)
}

// milestoneURL links to an issue search for a milestone.
func milestoneURL(base, title string) string {
	if base == "" {
		return ""
	}
	return base + "/issues?q=" + url.QueryEscape(`milestone:"`+title+`"`)
}

// profileURL links to a user profile on the repository's host.
func profileURL(base, handle string) string {
	if base == "" || handle == "" {
		return ""
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host + "/" + url.PathEscape(handle)
}
