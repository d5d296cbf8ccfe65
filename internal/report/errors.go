package report

import "errors"

// ErrNoIssues is returned when a report has no issues to render.
var ErrNoIssues = errors.New("no issues to report")

// ErrInvalidFileType is returned when Config.Format names no known renderer.
var ErrInvalidFileType = errors.New("invalid file type, expected txt or md")

// InvalidReportTypeError is returned by Render for an unknown report name.
type InvalidReportTypeError struct {
	Name string
}

// Error implements the error interface.
func (e *InvalidReportTypeError) Error() string {
	return "invalid report type, you entered " + e.Name
}
