package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/snitch/internal/report"
)

// reportSummaries describes how each report groups issues.
var reportSummaries = map[string]string{
	report.ReportList:           "no grouping",
	report.ReportMilestone:      "milestone",
	report.ReportMilestoneLabel: "milestone, then label",
	report.ReportLabel:          "label",
	report.ReportAssignee:       "assignee",
}

// newReportsCmd creates the reports command.
func newReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the available reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			names := report.ReportNames()

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"reports": names})
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, reportSummaries[name]})
			}
			printer.Table([]string{"REPORT", "GROUPS BY"}, rows)
			return nil
		},
	}
}
