package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer exposes the plugin's functions as MCP tools
type MCPServer struct {
	plugin    *Plugin
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(plugin *Plugin, version string) *MCPServer {
	mcpServer := server.NewMCPServer(
		"ytsummary",
		version,
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		plugin:    plugin,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s
}

// registerTools turns every function the plugin declares into a tool
func (s *MCPServer) registerTools() {
	for _, spec := range s.plugin.Spec() {
		s.mcpServer.AddTool(newToolFromSpec(spec), s.handler(spec))
	}
}

func newToolFromSpec(spec FunctionSpec) mcp.Tool {
	required := make(map[string]bool, len(spec.Parameters.Required))
	for _, name := range spec.Parameters.Required {
		required[name] = true
	}

	opts := []mcp.ToolOption{mcp.WithDescription(spec.Description)}
	// required parameters first, in declaration order, then any optional ones
	for _, name := range spec.Parameters.Required {
		prop := spec.Parameters.Properties[name]
		opts = append(opts, mcp.WithString(name, mcp.Description(prop.Description), mcp.Required()))
	}
	for name, prop := range spec.Parameters.Properties {
		if !required[name] {
			opts = append(opts, mcp.WithString(name, mcp.Description(prop.Description)))
		}
	}

	return mcp.NewTool(spec.Name, opts...)
}

// handler implements a tool by forwarding the call to Plugin.Execute
func (s *MCPServer) handler(spec FunctionSpec) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]any, len(spec.Parameters.Required))
		for _, name := range spec.Parameters.Required {
			value, err := request.RequireString(name)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("%s parameter is required and must be a string", name)), nil
			}
			args[name] = value
		}

		slog.Debug("tool call", slog.String("tool", spec.Name), slog.Any("args", args))

		result, err := s.plugin.Execute(ctx, spec.Name, nil, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		switch v := result.(type) {
		case string:
			return mcp.NewToolResultText(v), nil
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return mcp.NewToolResultErrorFromErr("encoding result", err), nil
			}
			return mcp.NewToolResultText(string(data)), nil
		}
	}
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Info("serving MCP over HTTP", slog.String("addr", addr))
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}
