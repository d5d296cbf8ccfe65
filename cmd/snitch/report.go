package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/snitch/internal/config"
	"github.com/gorewood/snitch/internal/gh"
	"github.com/gorewood/snitch/internal/issue"
	"github.com/gorewood/snitch/internal/output"
	"github.com/gorewood/snitch/internal/report"
)

// reportResult is the --json form of a rendered report.
type reportResult struct {
	Report     string `json:"report"`
	IssueCount int    `json:"issue_count"`
}

// newReportCmd creates the command that renders a report. It serves as the
// CLI root.
func newReportCmd(runner gh.Runner) *cobra.Command {
	var (
		flags     reportFlags
		inputPath string
		debug     bool
	)
	cmd := &cobra.Command{
		Use:   "snitch [report]",
		Short: "Render GitHub issue reports as text or markdown",
		Long: `snitch fetches issues with the GitHub CLI and renders them as a report.

Reports:
  list             every issue in fetch order (default)
  milestone        issues grouped by milestone
  milestone-label  issues grouped by milestone, then by label
  label            issues grouped by label
  assignee         issues grouped by assignee

Settings are read from <config dir>/config.yaml, then ./.snitch.yaml, then
--config. Flags override them when set.

Examples:
  snitch                                  # list open issues of this repo
  snitch label -t md --heading "Triage"   # HTML-flavored markdown by label
  snitch milestone -R owner/repo -s all   # every issue of another repo
  gh issue list --json number,title,labels,milestone,state,assignees,url | snitch -i -`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: report.ReportNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, runner, &flags, inputPath, debug)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read issue JSON from a file (- for stdin) instead of running gh")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print the resolved settings and gh command, then exit")
	return cmd
}

// runReport executes the report command.
func runReport(cmd *cobra.Command, args []string, runner gh.Runner, flags *reportFlags, inputPath string, debug bool) error {
	printer := newPrinter(cmd)

	cfg, err := resolveConfig(cmd, args, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	if cfg.Crop && cfg.Wrap {
		printer.Warn("both crop and wrap are set; overflowing titles are cropped")
	}

	logger := newLogger(cmd, debug)
	query := gh.Query{Repo: cfg.Repo, State: cfg.State, Limit: cfg.Limit}
	if debug {
		printDebug(printer, cfg, query, inputPath)
		logger.Debug("debug run, nothing fetched")
		return nil
	}

	issues, err := fetchIssues(cmd, runner, logger, query, inputPath)
	if err != nil {
		printer.Error(err)
		return err
	}

	doc, err := report.Render(cfg.ReportConfig(), cfg.Report, issues)
	if err != nil {
		err = userError(err)
		printer.Error(err)
		return err
	}
	logger.Debug("rendered report", "report", cfg.Report, "issues", len(issues))

	if printer.IsJSON() {
		return printer.WriteJSON(reportResult{Report: doc, IssueCount: len(issues)})
	}
	printer.Document(doc)
	return nil
}

// resolveConfig merges files, the positional report name and flags, then
// validates the result.
func resolveConfig(cmd *cobra.Command, args []string, flags *reportFlags) (config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.Report = args[0]
	}
	flags.apply(cmd.Flags(), &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, userError(err)
	}
	return cfg, nil
}

// fetchIssues reads issues from inputPath when set, otherwise from gh.
func fetchIssues(cmd *cobra.Command, runner gh.Runner, logger *slog.Logger, query gh.Query, inputPath string) ([]issue.Issue, error) {
	if inputPath != "" {
		return readIssues(cmd, inputPath)
	}
	return gh.NewClient(runner, logger).ListIssues(cmd.Context(), query)
}

// readIssues decodes an issue array from a file, or from stdin for "-".
func readIssues(cmd *cobra.Command, path string) ([]issue.Issue, error) {
	if path == "-" {
		issues, err := issue.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, output.NewUserErrorWithCause("reading stdin: "+err.Error(), err)
		}
		return issues, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, output.NewUserErrorWithCause("opening input: "+err.Error(), err)
	}
	defer func() { _ = file.Close() }()

	issues, err := issue.Decode(file)
	if err != nil {
		return nil, output.NewUserErrorWithCause("reading "+path+": "+err.Error(), err)
	}
	return issues, nil
}

// printDebug dumps the effective settings and the issue source to stderr.
func printDebug(printer *output.Printer, cfg config.Config, query gh.Query, inputPath string) {
	printer.Section("Settings")
	printer.KeyValue("report", cfg.Report)
	printer.KeyValue("file type", cfg.FileType)
	printer.KeyValue("max length", strconv.Itoa(cfg.MaxLength))
	printer.KeyValue("crop", strconv.FormatBool(cfg.Crop))
	printer.KeyValue("wrap", strconv.FormatBool(cfg.Wrap))
	printer.KeyValue("heading", headingSummary(cfg))
	printer.KeyValue("marks", cfg.Marks.Open+" open, "+cfg.Marks.Closed+" closed")

	printer.Section("Source")
	if inputPath != "" {
		printer.KeyValue("input", inputPath)
		return
	}
	printer.KeyValue("command", query.CommandLine())
}

func headingSummary(cfg config.Config) string {
	switch {
	case cfg.NoHeading:
		return "(disabled)"
	case strings.TrimSpace(cfg.Heading) == "":
		return "(none)"
	default:
		return cfg.Heading
	}
}
