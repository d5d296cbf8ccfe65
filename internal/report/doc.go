// Package report renders issue lists into text or markdown documents.
//
// A report run takes an immutable Config, a report name, and the issues the
// gh CLI returned, and produces one document string:
//
//	out, err := report.Render(cfg, report.ReportLabel, issues)
//
// # Output modes
//
// Config.Format selects a Renderer: FormatText produces plain text for
// terminals and files, FormatMarkdown produces the markdown/HTML hybrid
// (anchors, colored label spans, <br> line breaks) that renders on GitHub.
// All mode-specific formatting lives behind the Renderer interface, so the
// issue renderer and the grouping reports are mode-agnostic.
//
// # Reports
//
// Five reports are available (see ReportNames):
//
//	list             every issue, in input order
//	milestone        issues bucketed by milestone
//	milestone-label  milestone buckets, sub-bucketed by label
//	label            issues bucketed by label
//	assignee         issues bucketed by assignee
//
// Buckets appear in the order their key is first seen in the input. An
// issue with several labels or assignees appears once in every matching
// bucket. Inside a bucket, the grouped field is not repeated on each issue
// because the bucket heading already names it.
//
// # Errors
//
// Render never exits the process. It returns *InvalidReportTypeError for
// an unknown report name, ErrInvalidFileType for an unknown Format, and
// ErrNoIssues when there is nothing to report. Callers decide how to
// surface them.
package report
