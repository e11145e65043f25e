// Package main provides the entry point for the gitmcp server CLI.
package main

import (
	"github.com/spf13/cobra"

	gitmcp "github.com/zhoushaokun/git-mcp-server-sub004/internal/mcp"
	"github.com/zhoushaokun/git-mcp-server-sub004/internal/output"
)

// newToolsCmd creates the tools command listing the MCP tool surface.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server exposes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonMode := isJSONMode(cmd)
			isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
			printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)

			tools := gitmcp.ToolList()

			if jsonMode {
				entries := make([]map[string]string, 0, len(tools))
				for _, tool := range tools {
					entries = append(entries, map[string]string{
						"name":        tool.Name,
						"description": tool.Description,
					})
				}
				return printer.WriteJSON(map[string]any{"tools": entries})
			}

			rows := make([][]string, 0, len(tools))
			for _, tool := range tools {
				rows = append(rows, []string{tool.Name, tool.Description})
			}
			printer.Table([]string{"TOOL", "DESCRIPTION"}, rows)
			return nil
		},
	}
}
