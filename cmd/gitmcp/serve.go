// Package main provides the entry point for the gitmcp server CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zhoushaokun/git-mcp-server-sub004/internal/config"
	gitmcp "github.com/zhoushaokun/git-mcp-server-sub004/internal/mcp"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/output"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/provider"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run gitmcp as a Model Context Protocol (MCP) server over stdio.

This exposes git operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "git": {
        "command": "gitmcp",
        "args": ["serve"]
      }
    }
  }

Call git_set_working_dir once per session; every other tool then
operates on that repository unless given an explicit path.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadDefault()
			if err != nil {
				return output.NewSystemErrorWithCause("loading settings", err)
			}

			factory := provider.NewFactory(settings)
			p, err := factory.Get(provider.KindCLI)
			if err != nil {
				return output.NewSystemErrorWithCause("initializing git provider", err)
			}

			server := gitmcp.NewServer(buildVersion(), p, settings)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
