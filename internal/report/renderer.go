package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gorewood/snitch/internal/issue"
)

// Placeholders rendered when a field or grouping key is empty.
const (
	noLabels    = "no labels"
	noAssignees = "no assignees"
	noMilestone = "no milestone"
	unassigned  = "unassigned"
)

// Renderer formats the fields of an issue for one output mode. base is the
// repository web URL used to build links, possibly empty.
type Renderer interface {
	State(state issue.State) string
	Number(number int) string
	Labels(labels []issue.Label, base string) string
	Assignees(assignees []issue.Assignee, base string) string
	Milestone(milestone *issue.Milestone, base string) string

	// Indent is emitted in place of the labels block when labels are hidden.
	Indent() string

	// Escape makes title text safe for the output mode.
	Escape(text string) string
	// Ellipsis is appended to a cropped title; EllipsisWidth is the number
	// of columns it is charged for.
	Ellipsis() string
	EllipsisWidth() int
	// JoinWrapped joins wrapped title lines. reserved is the width taken by
	// the state mark and number label on the first line.
	JoinWrapped(lines []string, reserved int) string
	TitleLink(text, url string, number int) string
	LineBreak() string

	// Heading renders a section heading, linked to href when non-empty.
	Heading(level int, text, href string) string
}

// newRenderer returns the renderer for cfg.Format.
func newRenderer(cfg Config) (Renderer, error) {
	switch cfg.Format {
	case FormatText:
		return &textRenderer{marks: cfg.marks()}, nil
	case FormatMarkdown:
		return &markdownRenderer{marks: cfg.marks()}, nil
	default:
		return nil, ErrInvalidFileType
	}
}

// stateMark picks the glyph for a state. Unknown states count as open.
func stateMark(marks Marks, state issue.State) string {
	if state == issue.StateClosed {
		return marks.Closed + " "
	}
	return marks.Open + " "
}

// bracket wraps a list in the "[ ... ]" form shared by labels and assignees.
func bracket(items []string) string {
	return "[ " + strings.Join(items, ", ") + " ]"
}

// underline returns a rule as wide as text in terminal columns.
func underline(text string, char string) string {
	width := runewidth.StringWidth(text)
	if width < 1 {
		width = 1
	}
	return strings.Repeat(char, width)
}
