package report

import (
	"errors"
	"testing"

	"github.com/gorewood/snitch/internal/issue"
)

func TestRenderIssues_SingleIssuePlaceholders(t *testing.T) {
	issues := []issue.Issue{{
		Number: 1,
		Title:  "Fix bug",
		State:  issue.StateOpen,
		URL:    "u",
	}}

	got, err := RenderIssues(textConfig(), issues, AllFields())
	if err != nil {
		t.Fatalf("RenderIssues() error = %v", err)
	}

	want := "✗ #1: Fix bug\n    [ no labels ] [ no assignees ] no milestone"
	if got != want {
		t.Errorf("RenderIssues() = %q, want %q", got, want)
	}
}

func TestRenderIssues_Text(t *testing.T) {
	closed := withMilestone(withAssignees(withLabels(makeIssue(7, "Ship it"), "bug", "ui"), "octocat", "hubot"), "v1.0", "2026-03-01T00:00:00Z")
	closed.State = issue.StateClosed

	tests := []struct {
		name   string
		issues []issue.Issue
		opts   DisplayOptions
		want   string
	}{
		{
			name:   "all fields",
			issues: []issue.Issue{closed},
			opts:   AllFields(),
			want:   "✓ #7: Ship it\n    [ bug, ui ] [ octocat, hubot ] v1.0 (2026-03-01)",
		},
		{
			name:   "state hidden",
			issues: []issue.Issue{closed},
			opts:   DisplayOptions{ShowLabels: true, ShowAssignees: true, ShowMilestone: true},
			want:   "#7: Ship it\n    [ bug, ui ] [ octocat, hubot ] v1.0 (2026-03-01)",
		},
		{
			name:   "labels hidden keeps the indent",
			issues: []issue.Issue{closed},
			opts:   DisplayOptions{ShowState: true, ShowAssignees: true, ShowMilestone: true},
			want:   "✓ #7: Ship it\n    [ octocat, hubot ] v1.0 (2026-03-01)",
		},
		{
			name:   "assignees and milestone hidden",
			issues: []issue.Issue{closed},
			opts:   DisplayOptions{ShowState: true, ShowLabels: true},
			want:   "✓ #7: Ship it\n    [ bug, ui ] ",
		},
		{
			name:   "two issues separated by one blank line",
			issues: []issue.Issue{makeIssue(1, "First"), makeIssue(2, "Second")},
			opts:   AllFields(),
			want: "✗ #1: First\n    [ no labels ] [ no assignees ] no milestone" +
				"\n\n" +
				"✗ #2: Second\n    [ no labels ] [ no assignees ] no milestone",
		},
		{
			name:   "input order is preserved",
			issues: []issue.Issue{makeIssue(9, "Later"), makeIssue(3, "Earlier")},
			opts:   DisplayOptions{},
			want:   "#9: Later\n    " + "\n\n" + "#3: Earlier\n    ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderIssues(textConfig(), tt.issues, tt.opts)
			if err != nil {
				t.Fatalf("RenderIssues() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderIssues() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderIssues_Markdown(t *testing.T) {
	is := withMilestone(withAssignees(withLabels(makeIssue(3, "Crash & burn"), "bug"), "octocat"), "v1.0", "")
	cfg := Config{Format: FormatMarkdown, MaxLength: 80}

	got, err := RenderIssues(cfg, []issue.Issue{is}, AllFields())
	if err != nil {
		t.Fatalf("RenderIssues() error = %v", err)
	}

	want := `✗ #3: <a href="https://github.com/acme/widgets/issues/3" target="_blank" title="link to issue 3">Crash &amp; burn</a><br>` +
		`&nbsp;&nbsp;&nbsp;&nbsp;[ <a href="https://github.com/acme/widgets/labels/bug" target="_blank"><span style="color: #d73a4a;">bug</span></a> ] ` +
		`[ <a href="https://github.com/octocat" target="_blank">octocat</a> ]` +
		` <a href="https://github.com/acme/widgets/issues?q=milestone%3A%22v1.0%22" target="_blank">v1.0</a>`
	if got != want {
		t.Errorf("RenderIssues() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderIssues_MarkdownPlaceholders(t *testing.T) {
	cfg := Config{Format: FormatMarkdown, MaxLength: 80}

	got, err := RenderIssues(cfg, []issue.Issue{makeIssue(1, "Fix bug")}, AllFields())
	if err != nil {
		t.Fatalf("RenderIssues() error = %v", err)
	}

	want := `✗ #1: <a href="https://github.com/acme/widgets/issues/1" target="_blank" title="link to issue 1">Fix bug</a><br>` +
		`&nbsp;&nbsp;&nbsp;&nbsp;[ no labels ] [ no assignees ] no milestone`
	if got != want {
		t.Errorf("RenderIssues() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderIssues_Empty(t *testing.T) {
	for _, issues := range [][]issue.Issue{nil, {}} {
		_, err := RenderIssues(textConfig(), issues, AllFields())
		if !errors.Is(err, ErrNoIssues) {
			t.Errorf("RenderIssues(%v) error = %v, want ErrNoIssues", issues, err)
		}
	}
}

func TestRenderIssues_InvalidFormat(t *testing.T) {
	cfg := Config{Format: "pdf", MaxLength: 80}
	_, err := RenderIssues(cfg, []issue.Issue{makeIssue(1, "x")}, AllFields())
	if !errors.Is(err, ErrInvalidFileType) {
		t.Errorf("RenderIssues() error = %v, want ErrInvalidFileType", err)
	}
}

func TestRenderIssues_CustomMarks(t *testing.T) {
	cfg := textConfig()
	cfg.Marks = Marks{Open: "[ ]", Closed: "[x]"}

	closed := makeIssue(2, "Done")
	closed.State = issue.StateClosed

	got, err := RenderIssues(cfg, []issue.Issue{makeIssue(1, "Todo"), closed}, DisplayOptions{ShowState: true})
	if err != nil {
		t.Fatalf("RenderIssues() error = %v", err)
	}

	want := "[ ] #1: Todo\n    \n\n[x] #2: Done\n    "
	if got != want {
		t.Errorf("RenderIssues() = %q, want %q", got, want)
	}
}
