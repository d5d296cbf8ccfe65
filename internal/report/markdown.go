package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/gorewood/snitch/internal/issue"
)

const markdownIndent = "&nbsp;&nbsp;&nbsp;&nbsp;"

// markdownRenderer renders the markdown/HTML hybrid GitHub displays inline.
type markdownRenderer struct {
	marks Marks
}

func (m *markdownRenderer) State(state issue.State) string {
	return stateMark(m.marks, state)
}

func (m *markdownRenderer) Number(number int) string {
	return fmt.Sprintf("#%d: ", number)
}

func (m *markdownRenderer) Labels(labels []issue.Label, base string) string {
	if len(labels) == 0 {
		return markdownIndent + bracket([]string{noLabels}) + " "
	}
	items := make([]string, 0, len(labels))
	for _, label := range labels {
		span := fmt.Sprintf(`<span style="color: #%s;">%s</span>`, html.EscapeString(label.Color), html.EscapeString(label.Name))
		items = append(items, anchor(labelURL(base, label.Name), span))
	}
	return markdownIndent + bracket(items) + " "
}

func (m *markdownRenderer) Assignees(assignees []issue.Assignee, base string) string {
	if len(assignees) == 0 {
		return bracket([]string{noAssignees})
	}
	items := make([]string, 0, len(assignees))
	for _, assignee := range assignees {
		items = append(items, anchor(profileURL(base, assignee.Handle()), html.EscapeString(assignee.DisplayName())))
	}
	return bracket(items)
}

func (m *markdownRenderer) Milestone(milestone *issue.Milestone, base string) string {
	if milestone == nil {
		return " " + noMilestone
	}
	return " " + anchor(milestoneURL(base, milestone.Title), html.EscapeString(milestoneText(milestone)))
}

func (m *markdownRenderer) Indent() string { return markdownIndent }

func (m *markdownRenderer) Escape(text string) string { return html.EscapeString(text) }

// Some markdown engines turn "..." into a single ellipsis glyph, so a
// cropped title is charged one column for it.
func (m *markdownRenderer) Ellipsis() string { return "&hellip;" }

func (m *markdownRenderer) EllipsisWidth() int { return 1 }

func (m *markdownRenderer) JoinWrapped(lines []string, _ int) string {
	return strings.Join(lines, "<br>")
}

func (m *markdownRenderer) TitleLink(text, url string, number int) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" title="link to issue %d">%s</a>`, html.EscapeString(url), number, text)
}

func (m *markdownRenderer) LineBreak() string { return "<br>" }

func (m *markdownRenderer) Heading(level int, text, href string) string {
	return fmt.Sprintf("<h%d>%s</h%d>\n\n", level, anchor(href, html.EscapeString(text)), level)
}

// anchor wraps inner in a link opening in a new tab. Without an href the
// inner markup is returned as is.
func anchor(href, inner string) string {
	if href == "" {
		return inner
	}
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, html.EscapeString(href), inner)
}
