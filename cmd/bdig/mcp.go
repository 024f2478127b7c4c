package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bdig/bdig/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server exposing backup search and extraction tools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(version)
			return server.Run(context.Background())
		},
	}

	return cmd
}
