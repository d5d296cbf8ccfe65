// Package mcp provides a Model Context Protocol server for snitch.
// It exposes issue reports as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/snitch/internal/config"
	"github.com/gorewood/snitch/internal/gh"
	"github.com/gorewood/snitch/internal/issue"
)

// IssueSource fetches the issues a report is built from.
type IssueSource interface {
	ListIssues(ctx context.Context, q gh.Query) ([]issue.Issue, error)
}

// NewServer creates an MCP server with all snitch tools registered.
// Tool inputs override base field by field.
func NewServer(version string, source IssueSource, base config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "snitch",
		Version: version,
	}, nil)
	registerTools(server, source, base)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations(openWorld bool) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(openWorld),
	}
}

// registerTools adds all snitch tools to the server.
func registerTools(server *mcp.Server, source IssueSource, base config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "report",
		Description: "Render a GitHub issue report (list, milestone, milestone-label, label or assignee) " +
			"as plain text or markdown. Issues are fetched with gh issue list.",
		Annotations: readOnlyAnnotations(true),
	}, handleReport(source, base))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reports",
		Description: "List the report names accepted by the report tool.",
		Annotations: readOnlyAnnotations(false),
	}, handleReports())
}
