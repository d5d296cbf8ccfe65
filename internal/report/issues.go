package report

import (
	"strings"

	"github.com/gorewood/snitch/internal/issue"
)

// issueSeparator is the blank line between two rendered issues.
const issueSeparator = "\n\n"

// DisplayOptions selects the optional fields of a rendered issue. The
// number and title are always shown.
type DisplayOptions struct {
	ShowState     bool
	ShowLabels    bool
	ShowAssignees bool
	ShowMilestone bool
}

// AllFields shows every field.
func AllFields() DisplayOptions {
	return DisplayOptions{ShowState: true, ShowLabels: true, ShowAssignees: true, ShowMilestone: true}
}

// ReportableIssue holds the formatted fields of one issue.
type ReportableIssue struct {
	State     string
	Number    string
	Title     string
	Labels    string
	Assignees string
	Milestone string
}

// newReportableIssue formats every field of is, whether shown or not.
func newReportableIssue(cfg Config, r Renderer, is issue.Issue) ReportableIssue {
	base := repoBaseURL(cfg.Repo, is.URL)
	return ReportableIssue{
		State:     r.State(is.State),
		Number:    r.Number(is.Number),
		Title:     formatTitle(cfg, r, is.Title, is.URL, is.Number),
		Labels:    r.Labels(is.Labels, base),
		Assignees: r.Assignees(is.Assignees, base),
		Milestone: r.Milestone(is.Milestone, base),
	}
}

// RenderIssues renders issues in input order, separated by blank lines.
// It returns ErrNoIssues for an empty slice.
func RenderIssues(cfg Config, issues []issue.Issue, opts DisplayOptions) (string, error) {
	r, err := newRenderer(cfg)
	if err != nil {
		return "", err
	}
	return renderIssues(cfg, r, issues, opts)
}

func renderIssues(cfg Config, r Renderer, issues []issue.Issue, opts DisplayOptions) (string, error) {
	if len(issues) == 0 {
		return "", ErrNoIssues
	}

	var builder strings.Builder
	for i, is := range issues {
		if i > 0 {
			builder.WriteString(issueSeparator)
		}
		writeIssue(&builder, r, newReportableIssue(cfg, r, is), opts)
	}
	return builder.String(), nil
}

// writeIssue concatenates the fields in their fixed order. Hidden labels
// still leave an indent so the second line lines up.
func writeIssue(builder *strings.Builder, r Renderer, ri ReportableIssue, opts DisplayOptions) {
	if opts.ShowState {
		builder.WriteString(ri.State)
	}
	builder.WriteString(ri.Number)
	builder.WriteString(ri.Title)

	assignees := ri.Assignees
	if opts.ShowLabels {
		builder.WriteString(ri.Labels)
	} else {
		builder.WriteString(r.Indent())
		assignees = strings.TrimSpace(assignees)
	}

	if opts.ShowAssignees {
		builder.WriteString(assignees)
	}
	if opts.ShowMilestone {
		builder.WriteString(ri.Milestone)
	}
}
