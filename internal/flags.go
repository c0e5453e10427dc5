package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AddLanguageFlags adds the target language flag
func AddLanguageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "Target transcript language (ISO 639-1, e.g. fr)")
	_ = cmd.MarkFlagRequired("lang")
}

// AddOutputFlags adds flags controlling how the transcript is printed
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("raw", false, "Print plain text even when stdout is a terminal")
}

// AddSourceLanguagesFlag adds a flag overriding the configured source language preference
func AddSourceLanguagesFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("source-langs", nil, "Source language preference, most preferred first (e.g. en,es)")
}

// TargetLanguage reads and validates the --lang flag
func TargetLanguage(cmd *cobra.Command) (string, error) {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return "", fmt.Errorf("failed to get lang flag: %w", err)
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", fmt.Errorf("target language must not be empty")
	}
	return lang, nil
}

// HandleSourceLanguagesFlag replaces the configured preference list when --source-langs is set
func HandleSourceLanguagesFlag(cmd *cobra.Command, config *Config) error {
	flag := cmd.Flags().Lookup("source-langs")
	if flag == nil || !flag.Changed {
		return nil
	}

	languages, err := cmd.Flags().GetStringSlice("source-langs")
	if err != nil {
		return fmt.Errorf("failed to get source-langs flag: %w", err)
	}
	config.Languages = normalizeLanguages(languages)
	return nil
}

// HandleVerboseFlag processes the --verbose flag to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	// the config file may already have enabled it
	config.Verbose = config.Verbose || verbose
	return nil
}

// HandleQuietFlag processes the --quiet flag to update config
func HandleQuietFlag(cmd *cobra.Command, config *Config) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	config.Quiet = config.Quiet || quiet
	return nil
}
