package report

import (
	"github.com/gorewood/snitch/internal/issue"
)

// Report names accepted by Render.
const (
	ReportList           = "list"
	ReportMilestone      = "milestone"
	ReportMilestoneLabel = "milestone-label"
	ReportLabel          = "label"
	ReportAssignee       = "assignee"
)

// reportBuilders maps each report name to the section tree it renders.
var reportBuilders = map[string]func(cfg Config, r Renderer) section{
	ReportList: func(cfg Config, r Renderer) section {
		return listSection(cfg, r, AllFields())
	},
	ReportMilestone: func(cfg Config, r Renderer) section {
		opts := AllFields()
		opts.ShowMilestone = false
		return groupedSection(cfg, r, ByMilestone, 2, listSection(cfg, r, opts))
	},
	ReportMilestoneLabel: func(cfg Config, r Renderer) section {
		opts := AllFields()
		opts.ShowMilestone = false
		opts.ShowLabels = false
		byLabel := groupedSection(cfg, r, ByLabel, 3, listSection(cfg, r, opts))
		return groupedSection(cfg, r, ByMilestone, 2, byLabel)
	},
	ReportLabel: func(cfg Config, r Renderer) section {
		opts := AllFields()
		opts.ShowLabels = false
		return groupedSection(cfg, r, ByLabel, 2, listSection(cfg, r, opts))
	},
	ReportAssignee: func(cfg Config, r Renderer) section {
		opts := AllFields()
		opts.ShowAssignees = false
		return groupedSection(cfg, r, ByAssignee, 2, listSection(cfg, r, opts))
	},
}

// ReportNames returns the accepted report names.
func ReportNames() []string {
	return []string{ReportList, ReportMilestone, ReportMilestoneLabel, ReportLabel, ReportAssignee}
}

// IsReportName reports whether name selects a report.
func IsReportName(name string) bool {
	_, ok := reportBuilders[name]
	return ok
}

// Render produces the named report for issues. The report name is checked
// before anything else, so an invalid name fails even without issues.
func Render(cfg Config, name string, issues []issue.Issue) (string, error) {
	build, ok := reportBuilders[name]
	if !ok {
		return "", &InvalidReportTypeError{Name: name}
	}

	r, err := newRenderer(cfg)
	if err != nil {
		return "", err
	}
	if len(issues) == 0 {
		return "", ErrNoIssues
	}

	body, err := build(cfg, r)(issues)
	if err != nil {
		return "", err
	}
	return heading(cfg, r, issues) + body, nil
}

// heading renders the document title, linked to the repository in
// markdown when its URL is known.
func heading(cfg Config, r Renderer, issues []issue.Issue) string {
	if cfg.NoHeading || cfg.Heading == "" {
		return ""
	}
	return r.Heading(1, cfg.Heading, repoBaseURL(cfg.Repo, issues[0].URL))
}
