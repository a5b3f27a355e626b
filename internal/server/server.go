// Package server exposes the accessibility tree to MCP clients.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/mj1618/accessibility/internal/config"
	"github.com/mj1618/accessibility/internal/platform"
	"github.com/mj1618/accessibility/internal/version"
)

// Options holds MCP server configuration.
type Options struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	// Search supplies the finder defaults for tools that take no explicit value.
	Search config.Config
}

// Server wraps the MCP server with the platform provider and cache.
type Server struct {
	provider   *platform.Provider
	cache      *TreeCache
	providerMu sync.Mutex
	opts       Options
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all aq tools.
func New(provider *platform.Provider, opts Options) *Server {
	s := &Server{
		provider: provider,
		cache:    NewTreeCache(opts.CacheTTL),
		opts:     opts,
	}
	s.mcp = mcpserver.NewMCPServer("aq", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.opts.Transport {
	case "", "stdio":
		logrus.Debug("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", s.opts.Port)
		logrus.Infof("serving MCP over streamable HTTP on %s", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.opts.Transport)
	}
}

func targetOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("app", mcp.Description("Application name (e.g. 'Safari'); default is the frontmost app")),
		mcp.WithString("bundle", mcp.Description("Bundle identifier (e.g. 'com.apple.Safari')")),
		mcp.WithNumber("pid", mcp.Description("Process ID")),
		mcp.WithBoolean("system", mcp.Description("Use the system-wide element")),
	}
}

func queryOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("role", mcp.Description("Role code (btn, input, ...) or raw role (AXButton)")),
		mcp.WithString("subrole", mcp.Description("Raw subrole (e.g. AXCloseButton)")),
		mcp.WithString("title", mcp.Description("Exact title")),
		mcp.WithString("title_contains", mcp.Description("Case-insensitive title substring")),
		mcp.WithString("text", mcp.Description("Substring of title, value, description or identifier")),
		mcp.WithString("identifier", mcp.Description("Exact AXIdentifier")),
		mcp.WithString("attributes", mcp.Description("Comma-separated NAME=VALUE attribute filters")),
		mcp.WithNumber("wait", mcp.Description("Milliseconds to keep searching before giving up")),
		mcp.WithNumber("max_depth", mcp.Description("Max search depth")),
	}
}

func tool(name, description string, groups ...[]mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(description)}
	for _, g := range groups {
		opts = append(opts, g...)
	}
	return mcp.NewTool(name, opts...)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		tool("apps", "List running applications with a user interface"),
		s.handleApps,
	)

	s.mcp.AddTool(
		tool("tree", "Read the accessibility element tree of an application. Returns roles, titles, values, bounds and optionally actions.",
			targetOptions(),
			[]mcp.ToolOption{
				mcp.WithNumber("depth", mcp.Description("Max depth to traverse (0 = 100)")),
				mcp.WithNumber("limit", mcp.Description("Max elements to read (0 = unlimited)")),
				mcp.WithBoolean("actions", mcp.Description("Include each element's actions")),
				mcp.WithBoolean("flat", mcp.Description("Return a flat list with paths instead of a tree")),
				mcp.WithString("roles", mcp.Description("Comma-separated role codes to keep (e.g. 'btn,input' or 'interactive')")),
				mcp.WithString("text", mcp.Description("Keep elements whose text contains this")),
				mcp.WithBoolean("focused", mcp.Description("Keep only the focused element and its ancestors")),
				mcp.WithBoolean("prune", mcp.Description("Drop empty anonymous groups")),
			}),
		s.handleTree,
	)

	s.mcp.AddTool(
		tool("find", "Find the first element matching a query, waiting for it to appear if asked",
			targetOptions(), queryOptions()),
		s.handleFind,
	)

	s.mcp.AddTool(
		tool("attributes", "List every attribute of an element with its kind, value and whether it is settable, plus its actions",
			targetOptions(), queryOptions()),
		s.handleAttributes,
	)

	s.mcp.AddTool(
		tool("perform_action", "Perform an accessibility action (press, increment, decrement, confirm, cancel, raise, showmenu, pick) on an element",
			targetOptions(), queryOptions(),
			[]mcp.ToolOption{
				mcp.WithString("action", mcp.Description("Action to perform (default: press)")),
			}),
		s.handlePerformAction,
	)

	s.mcp.AddTool(
		tool("set_value", "Set an attribute of an element from text. The text is parsed according to the attribute's kind.",
			targetOptions(), queryOptions(),
			[]mcp.ToolOption{
				mcp.WithString("attribute", mcp.Description("Attribute to set (default: AXValue)")),
				mcp.WithString("value", mcp.Required(), mcp.Description("New value, e.g. 'hello', 'true', '0.5', '10,20'")),
			}),
		s.handleSetValue,
	)
}
