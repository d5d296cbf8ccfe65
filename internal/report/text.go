package report

import (
	"fmt"
	"strings"

	"github.com/gorewood/snitch/internal/issue"
)

const textIndent = "    "

// textRenderer renders plain text.
type textRenderer struct {
	marks Marks
}

func (t *textRenderer) State(state issue.State) string {
	return stateMark(t.marks, state)
}

func (t *textRenderer) Number(number int) string {
	return fmt.Sprintf("#%d: ", number)
}

func (t *textRenderer) Labels(labels []issue.Label, _ string) string {
	if len(labels) == 0 {
		return textIndent + bracket([]string{noLabels}) + " "
	}
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.Name)
	}
	return textIndent + bracket(names) + " "
}

func (t *textRenderer) Assignees(assignees []issue.Assignee, _ string) string {
	if len(assignees) == 0 {
		return bracket([]string{noAssignees})
	}
	names := make([]string, 0, len(assignees))
	for _, assignee := range assignees {
		names = append(names, assignee.DisplayName())
	}
	return bracket(names)
}

func (t *textRenderer) Milestone(milestone *issue.Milestone, _ string) string {
	if milestone == nil {
		return " " + noMilestone
	}
	return " " + milestoneText(milestone)
}

func (t *textRenderer) Indent() string { return textIndent }

func (t *textRenderer) Escape(text string) string { return text }

func (t *textRenderer) Ellipsis() string { return "..." }

func (t *textRenderer) EllipsisWidth() int { return 3 }

func (t *textRenderer) JoinWrapped(lines []string, reserved int) string {
	return strings.Join(lines, "\n"+strings.Repeat(" ", reserved))
}

func (t *textRenderer) TitleLink(text, _ string, _ int) string { return text }

func (t *textRenderer) LineBreak() string { return "\n" }

func (t *textRenderer) Heading(level int, text, _ string) string {
	char := "~"
	switch level {
	case 1:
		char = "="
	case 2:
		char = "-"
	}
	return text + "\n" + underline(text, char) + "\n\n"
}

// milestoneText is the milestone title with its due date, if any.
func milestoneText(milestone *issue.Milestone) string {
	if due := milestone.DueDate(); due != "" {
		return fmt.Sprintf("%s (%s)", milestone.Title, due)
	}
	return milestone.Title
}
