package report

import (
	"strconv"

	"github.com/gorewood/snitch/internal/issue"
)

func itoa(n int) string { return strconv.Itoa(n) }

// makeIssue builds an open issue with a GitHub-style URL.
func makeIssue(number int, title string) issue.Issue {
	return issue.Issue{
		Number: number,
		Title:  title,
		State:  issue.StateOpen,
		URL:    "https://github.com/acme/widgets/issues/" + itoa(number),
	}
}

func withLabels(is issue.Issue, names ...string) issue.Issue {
	for _, name := range names {
		is.Labels = append(is.Labels, issue.Label{Name: name, Color: "d73a4a"})
	}
	return is
}

func withAssignees(is issue.Issue, logins ...string) issue.Issue {
	for _, login := range logins {
		is.Assignees = append(is.Assignees, issue.Assignee{Login: login})
	}
	return is
}

func withMilestone(is issue.Issue, title, dueOn string) issue.Issue {
	is.Milestone = &issue.Milestone{Title: title, DueOn: dueOn}
	return is
}

func textConfig() Config {
	return Config{Format: FormatText, MaxLength: 80}
}
