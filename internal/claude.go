package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ClaudeDesktopServer is one entry of the mcpServers map in claude_desktop_config.json
type ClaudeDesktopServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// RegisterClaudeDesktopServer adds or replaces the named server in an existing
// Claude Desktop config file. Unknown top-level keys and other servers are kept.
func RegisterClaudeDesktopServer(configPath, name string, server ClaudeDesktopServer) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config for Claude Desktop not found at %s", configPath)
		}
		return fmt.Errorf("reading existing config: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing existing config: %w", err)
	}
	if raw == nil {
		raw = make(map[string]json.RawMessage)
	}

	servers := make(map[string]json.RawMessage)
	if existing, ok := raw["mcpServers"]; ok && string(existing) != "null" {
		if err := json.Unmarshal(existing, &servers); err != nil {
			return fmt.Errorf("parsing mcpServers: %w", err)
		}
	}

	entry, err := json.Marshal(server)
	if err != nil {
		return fmt.Errorf("encoding server entry: %w", err)
	}
	servers[name] = entry

	if raw["mcpServers"], err = json.Marshal(servers); err != nil {
		return fmt.Errorf("encoding mcpServers: %w", err)
	}

	data, err = json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ClaudeDesktopConfigPath returns the platform-specific config path for Claude Desktop
func ClaudeDesktopConfigPath() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil
	case "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, ".config", "Claude", "claude_desktop_config.json"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
