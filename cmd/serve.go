package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/site-assist/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing knowledge search and assistant tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		deps, err := buildAssistant(cfg, true)
		if err != nil {
			return err
		}
		defer deps.database.Close()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "siteassist MCP server started on stdio (knowledge items=%d)\n", deps.index.Len())

		srv := mcpserver.NewServer(deps.index, deps.pipe, deps.leads, cfg.DefaultLanguage)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
