package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/rtzll/ytsummary/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the youtube_summary function over MCP",
	Long: `Run a Model Context Protocol (MCP) server that exposes the plugin's
functions as tools, so chatbots can call them.

The MCP server provides one tool:
- youtube_summary: Fetch a video's transcript translated into target_language

Failures the chatbot should relay to the user (video too long, no transcript)
are returned as a JSON object with a "result" message.

Transport options:
- stdio (default): Standard MCP transport via stdin/stdout
- http: HTTP transport on specified port (use --port to configure)`,
	Example: `  # Run MCP server with stdio transport (e.g. for Claude Desktop)
  ytsummary mcp

  # Run MCP server with HTTP transport on port 8080
  ytsummary mcp --transport=http --port=8080

  # Set up Claude Desktop integration
  ytsummary mcp setup-claude`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// stdout belongs to the protocol
		config.Quiet = true
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app, err := internal.NewApp(config)
		if err != nil {
			return err
		}

		mcpServer := internal.NewMCPServer(app.Plugin(), version)

		slog.Debug("starting MCP server", slog.String("transport", transport), slog.Int("port", port))

		// Start the server (this will block until context is cancelled)
		return mcpServer.Start(cmd.Context(), transport, port)
	},
}

// setupClaudeCmd represents the setup-claude subcommand
var setupClaudeCmd = &cobra.Command{
	Use:   "setup-claude",
	Short: "Configure Claude Desktop to use the ytsummary MCP server",
	Long: `Automatically configure Claude Desktop to use ytsummary as an MCP server.

This command will:
- Detect Claude Desktop installation and config location
- Add the ytsummary MCP server configuration to claude_desktop_config.json
- Preserve existing MCP server configurations
- Set appropriate XDG environment variables for the current platform`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setupClaudeDesktop(cmd)
	},
}

// setupClaudeDesktop registers this binary as the "ytsummary" server
func setupClaudeDesktop(cmd *cobra.Command) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("getting executable path: %w", err)
	}

	// Resolve symlinks to get the actual binary path
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	configPath, err := internal.ClaudeDesktopConfigPath()
	if err != nil {
		return fmt.Errorf("getting Claude Desktop config path: %w", err)
	}

	// Claude Desktop starts servers with a minimal environment
	server := internal.ClaudeDesktopServer{
		Command: execPath,
		Args:    []string{"mcp"},
		Env: map[string]string{
			"XDG_CONFIG_HOME": xdg.ConfigHome,
			"XDG_CACHE_HOME":  xdg.CacheHome,
		},
	}
	if err := internal.RegisterClaudeDesktopServer(configPath, "ytsummary", server); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Successfully configured Claude Desktop MCP server")
	fmt.Fprintln(cmd.OutOrStdout(), "Restart Claude Desktop to use the ytsummary MCP server")
	return nil
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol (stdio or http)")
	mcpCmd.Flags().Int("port", 8080, "Port for HTTP transport (only used with --transport=http)")
	mcpCmd.AddCommand(setupClaudeCmd)
	rootCmd.AddCommand(mcpCmd)
}
