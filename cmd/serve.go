package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing aq tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the accessibility
tree as tools: apps, tree, find, attributes, perform_action and set_value.

Supported transports:
  stdio             Standard I/O (default, for local MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Searches without an explicit wait or max_depth use the configured --wait and
--max-depth.`,
	Example: `  aq serve
  aq serve --transport streamable-http --port 8080
  aq serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Duration("cache-ttl", 500*time.Millisecond, "Tree cache TTL (0 to disable)")
	addSearchFlags(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")

	provider, err := newProvider()
	if err != nil {
		return errors.Wrap(err, "create MCP server")
	}
	srv := server.New(provider, server.Options{
		Transport: transport,
		Port:      port,
		CacheTTL:  cacheTTL,
		Search:    cfg,
	})
	return srv.Serve()
}
