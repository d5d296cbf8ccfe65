package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/snitch/internal/gh"
	snitchmcp "github.com/gorewood/snitch/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(runner gh.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run snitch as a Model Context Protocol (MCP) server over stdio.

This exposes issue reports as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "snitch": {
        "command": "snitch",
        "args": ["serve"]
      }
    }
  }

Available tools: report, reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := loadConfig(cmd)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			source := gh.NewClient(runner, newLogger(cmd, false))
			server := snitchmcp.NewServer(buildVersion(), source, base)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
