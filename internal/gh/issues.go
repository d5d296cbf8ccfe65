package gh

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gorewood/snitch/internal/issue"
	"github.com/gorewood/snitch/internal/output"
)

// IssueFields are the JSON fields requested from gh issue list.
var IssueFields = []string{"number", "title", "labels", "milestone", "state", "assignees", "url"}

// Query selects the issues to fetch.
type Query struct {
	Repo  string // empty means the repository of the working directory
	State string // open, closed or all
	Limit int
}

// Args returns the gh arguments for q.
func (q Query) Args() []string {
	args := []string{
		"issue", "list",
		"-L", strconv.Itoa(q.Limit),
		"--state", q.State,
		"--json", strings.Join(IssueFields, ","),
	}
	if q.Repo != "" {
		args = append(args, "-R", q.Repo)
	}
	return args
}

// CommandLine returns q as the shell command a user could run.
func (q Query) CommandLine() string {
	return "gh " + strings.Join(q.Args(), " ")
}

// Runner executes gh with arguments and returns its stdout.
type Runner func(ctx context.Context, args ...string) (string, error)

// Client lists issues through a Runner.
type Client struct {
	run    Runner
	logger *slog.Logger
}

// NewClient creates a client. A nil runner uses the gh binary; a nil logger
// discards log output.
func NewClient(run Runner, logger *slog.Logger) *Client {
	if run == nil {
		run = Run
	}
	if logger == nil {
		logger = output.NopLogger()
	}
	return &Client{run: run, logger: logger}
}

// ListIssues runs one gh issue list call and decodes the result.
func (c *Client) ListIssues(ctx context.Context, q Query) ([]issue.Issue, error) {
	c.logger.Debug("running gh", "command", q.CommandLine())

	out, err := c.run(ctx, q.Args()...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	issues, err := issue.Parse([]byte(out))
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("unexpected gh output: %v", err), err)
	}

	c.logger.Debug("fetched issues", "count", len(issues))
	return issues, nil
}
