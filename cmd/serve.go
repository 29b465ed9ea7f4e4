package cmd

import (
	"github.com/spf13/cobra"

	"i3mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing i3 control tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes i3 window
manager control as tools.

Supported transports:
  stdio   Standard I/O (default, for MCP clients)
  http    Streamable HTTP transport (for remote agents)

Examples:
  i3mcp serve
  i3mcp serve --transport http --port 8765`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, http (default from config)")
	serveCmd.Flags().Int("port", 0, "HTTP port for the http transport (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	if transport == "" {
		transport = cfg.Transport
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}

	srv := server.New(newClient(), cfg.CharacterLimit, logger)
	logger.Info().Str("transport", transport).Msg("starting MCP server")
	return srv.Serve(transport, port)
}
