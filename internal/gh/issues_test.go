package gh

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gorewood/snitch/internal/output"
)

func TestQuery_Args(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "current repository",
			query: Query{State: "open", Limit: 100},
			want:  "issue list -L 100 --state open --json number,title,labels,milestone,state,assignees,url",
		},
		{
			name:  "explicit repository",
			query: Query{Repo: "acme/widgets", State: "all", Limit: 5},
			want:  "issue list -L 5 --state all --json number,title,labels,milestone,state,assignees,url -R acme/widgets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(tt.query.Args(), " "); got != tt.want {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
			if got := tt.query.CommandLine(); got != "gh "+tt.want {
				t.Errorf("CommandLine() = %q, want %q", got, "gh "+tt.want)
			}
		})
	}
}

func TestClient_ListIssues(t *testing.T) {
	var gotArgs []string
	run := func(_ context.Context, args ...string) (string, error) {
		gotArgs = args
		return `[{"number": 3, "title": "Fix bug", "state": "OPEN", "labels": [], "assignees": [], "milestone": null, "url": "https://github.com/acme/widgets/issues/3"}]`, nil
	}

	var logs bytes.Buffer
	client := NewClient(run, output.NewLogger(&logs, slog.LevelDebug))

	issues, err := client.ListIssues(context.Background(), Query{Repo: "acme/widgets", State: "open", Limit: 10})
	if err != nil {
		t.Fatalf("ListIssues() error = %v", err)
	}
	if len(issues) != 1 || issues[0].Number != 3 || issues[0].State != "open" {
		t.Errorf("ListIssues() = %+v, want issue #3 open", issues)
	}
	if !strings.Contains(strings.Join(gotArgs, " "), "-R acme/widgets") {
		t.Errorf("runner args = %v, want -R acme/widgets", gotArgs)
	}
	if !strings.Contains(logs.String(), "gh issue list") {
		t.Errorf("debug log missing command: %q", logs.String())
	}
}

func TestClient_ListIssues_Empty(t *testing.T) {
	for _, out := range []string{"", "[]"} {
		client := NewClient(func(context.Context, ...string) (string, error) { return out, nil }, nil)
		issues, err := client.ListIssues(context.Background(), Query{State: "open", Limit: 1})
		if err != nil {
			t.Fatalf("ListIssues(%q) error = %v", out, err)
		}
		if len(issues) != 0 {
			t.Errorf("ListIssues(%q) = %v, want none", out, issues)
		}
	}
}

func TestClient_ListIssues_RunnerError(t *testing.T) {
	runErr := output.NewSystemError("gh command failed: HTTP 401")
	client := NewClient(func(context.Context, ...string) (string, error) { return "", runErr }, nil)

	_, err := client.ListIssues(context.Background(), Query{State: "open", Limit: 1})
	if !errors.Is(err, runErr) {
		t.Errorf("ListIssues() error = %v, want %v", err, runErr)
	}
}

func TestClient_ListIssues_BadOutput(t *testing.T) {
	client := NewClient(func(context.Context, ...string) (string, error) { return "not json", nil }, nil)

	_, err := client.ListIssues(context.Background(), Query{State: "open", Limit: 1})
	if err == nil {
		t.Fatal("ListIssues() expected error for invalid output")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}
