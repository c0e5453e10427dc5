package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application settings
type Config struct {
	// User configurable settings
	Languages       []string
	MetadataBackend string
	Client          ClientProfile
	HTTPTimeout     time.Duration
	LogLevel        string
	LogFile         bool
	Verbose         bool
	Quiet           bool

	// Fixed XDG paths (not configurable)
	ConfigDir string
	CacheDir  string
	LogPath   string
}

//go:embed config.toml
var defaultFS embed.FS

// ensureDefaultFile checks if a file exists in the specified directory
// and creates it from the embedded default if it doesn't exist
func ensureDefaultFile(configDir, embedFilename, description string) error {
	filePath := filepath.Join(configDir, embedFilename)

	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile(embedFilename)
	if err != nil {
		return fmt.Errorf("reading embedded default %s: %w", description, err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default %s: %w", description, err)
	}

	fmt.Fprintf(os.Stderr, "Created default %s at %s\n", description, filePath)
	return nil
}

// EnsureDefaultConfig checks if a config file exists in the XDG config directory
// and creates it from the embedded default if it doesn't exist
func EnsureDefaultConfig(configDir string) error {
	return ensureDefaultFile(configDir, "config.toml", "configuration")
}

// setDefaults registers the default value of every configurable setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("languages", DefaultLanguages)
	v.SetDefault("metadata_backend", BackendInnerTube)
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", false)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("client.name", DefaultClientProfile.Name)
	v.SetDefault("client.version", DefaultClientProfile.Version)
	v.SetDefault("client.android_sdk_version", DefaultClientProfile.AndroidSDKVersion)
	v.SetDefault("client.user_agent", DefaultClientProfile.UserAgent)
}

// InitConfig loads .env, the config file and YTSUMMARY_ prefixed environment variables.
// configFile overrides the XDG config location when set.
func InitConfig(configFile string) *Config {
	// .env is optional
	_ = godotenv.Load()

	configDir := filepath.Join(xdg.ConfigHome, "ytsummary")
	cacheDir := filepath.Join(xdg.CacheHome, "ytsummary")

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// YTSUMMARY_CLIENT_VERSION overrides client.version
	v.SetEnvPrefix("YTSUMMARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	config := configFromViper(v)
	config.ConfigDir = configDir
	config.CacheDir = cacheDir
	config.LogPath = filepath.Join(cacheDir, "ytsummary.log")

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	return config
}

// configFromViper creates the config struct from viper values
func configFromViper(v *viper.Viper) *Config {
	return &Config{
		Languages:       normalizeLanguages(v.GetStringSlice("languages")),
		MetadataBackend: strings.ToLower(v.GetString("metadata_backend")),
		Client: ClientProfile{
			Name:              v.GetString("client.name"),
			Version:           v.GetString("client.version"),
			AndroidSDKVersion: v.GetInt("client.android_sdk_version"),
			UserAgent:         v.GetString("client.user_agent"),
		},
		HTTPTimeout: v.GetDuration("http_timeout"),
		LogLevel:    v.GetString("log_level"),
		LogFile:     v.GetBool("log_file"),
		Verbose:     v.GetBool("verbose"),
		Quiet:       v.GetBool("quiet"),
	}
}

// normalizeLanguages accepts both lists and comma separated values ("zh,es,en"),
// keeps the case of codes such as pt-BR and drops case-insensitive duplicates while keeping the order
func normalizeLanguages(values []string) []string {
	seen := make(map[string]bool)
	var languages []string
	for _, value := range values {
		for code := range strings.SplitSeq(value, ",") {
			code = strings.TrimSpace(code)
			key := strings.ToLower(code)
			if code == "" || seen[key] {
				continue
			}
			seen[key] = true
			languages = append(languages, code)
		}
	}
	if len(languages) == 0 {
		return append([]string(nil), DefaultLanguages...)
	}
	return languages
}
