// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/netschema/yangkeys/internal/tool"
)

const serverVersion = "0.1.0"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the extractor as an MCP tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "yangkeys",
				Version: serverVersion,
			}, nil)
			mcp.AddTool(server, tool.MetadataExtractListKeys, tool.ExtractListKeys)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
