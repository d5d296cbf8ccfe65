package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/snitch/internal/config"
	"github.com/gorewood/snitch/internal/gh"
	"github.com/gorewood/snitch/internal/report"
)

// --- Report tool ---

// ReportInput is the input for the report tool. Zero values keep the
// server's configured defaults.
type ReportInput struct {
	Report    string `json:"report,omitempty"     jsonschema:"report name: list, milestone, milestone-label, label or assignee"`
	FileType  string `json:"file_type,omitempty"  jsonschema:"output format: txt or md"`
	Repo      string `json:"repo,omitempty"       jsonschema:"repository as OWNER/NAME (default: current directory)"`
	State     string `json:"state,omitempty"      jsonschema:"issue state filter: open, closed or all"`
	Limit     int    `json:"limit,omitempty"      jsonschema:"maximum number of issues to fetch"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"maximum line width for titles"`
	Crop      bool   `json:"crop,omitempty"       jsonschema:"crop titles that overflow max_length"`
	Wrap      bool   `json:"wrap,omitempty"       jsonschema:"wrap titles that overflow max_length"`
	Heading   string `json:"heading,omitempty"    jsonschema:"document heading"`
	NoHeading bool   `json:"no_heading,omitempty" jsonschema:"omit the document heading"`
}

// ReportOutput is the output for the report tool.
type ReportOutput struct {
	Report     string `json:"report"      jsonschema:"the rendered report"`
	IssueCount int    `json:"issue_count" jsonschema:"number of issues in the report"`
}

// apply overlays the set input fields on base.
func (in ReportInput) apply(base config.Config) config.Config {
	cfg := base
	if in.Report != "" {
		cfg.Report = in.Report
	}
	if in.FileType != "" {
		cfg.FileType = in.FileType
	}
	if in.Repo != "" {
		cfg.Repo = in.Repo
	}
	if in.State != "" {
		cfg.State = in.State
	}
	if in.Limit > 0 {
		cfg.Limit = in.Limit
	}
	if in.MaxLength > 0 {
		cfg.MaxLength = in.MaxLength
	}
	if in.Heading != "" {
		cfg.Heading = in.Heading
	}
	cfg.Crop = cfg.Crop || in.Crop
	cfg.Wrap = cfg.Wrap || in.Wrap
	cfg.NoHeading = cfg.NoHeading || in.NoHeading
	return cfg
}

func handleReport(source IssueSource, base config.Config) mcp.ToolHandlerFor[ReportInput, ReportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, ReportOutput, error) {
		cfg := input.apply(base)
		if err := cfg.Validate(); err != nil {
			return nil, ReportOutput{}, err
		}

		issues, err := source.ListIssues(ctx, gh.Query{Repo: cfg.Repo, State: cfg.State, Limit: cfg.Limit})
		if err != nil {
			return nil, ReportOutput{}, fmt.Errorf("fetching issues: %w", err)
		}

		doc, err := report.Render(cfg.ReportConfig(), cfg.Report, issues)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		return nil, ReportOutput{Report: doc, IssueCount: len(issues)}, nil
	}
}

// --- Reports tool ---

// ReportsInput is the input for the reports tool (no parameters needed).
type ReportsInput struct{}

// ReportsOutput is the output for the reports tool.
type ReportsOutput struct {
	Reports []string `json:"reports" jsonschema:"accepted report names"`
}

func handleReports() mcp.ToolHandlerFor[ReportsInput, ReportsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ReportsInput) (*mcp.CallToolResult, ReportsOutput, error) {
		return nil, ReportsOutput{Reports: report.ReportNames()}, nil
	}
}
