package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rtzll/ytsummary/internal"
)

var (
	config   *internal.Config
	closeLog = func() error { return nil }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytsummary [YouTube URL or ID]",
	Short: "Fetch a YouTube video's transcript translated into another language",
	Long: `ytsummary fetches the transcript of a YouTube video and translates it
using YouTube's own caption translation.

A transcript is picked from the configured source languages (most spoken
languages first) and translated into the language given with --lang.
Videos longer than 45 minutes are rejected.

The same operation is exposed to chatbots as the "youtube_summary" function
through the MCP server (see "ytsummary mcp").`,
	Example: `  # Get an English video's transcript in French
  ytsummary "https://www.youtube.com/watch?v=tAP1eZYEuKA" -l fr
  ytsummary tAP1eZYEuKA -l fr

  # Prefer Spanish, then English source transcripts
  ytsummary "https://youtu.be/tAP1eZYEuKA" -l de --source-langs es,en

  # Plain text output, no markdown rendering
  ytsummary tAP1eZYEuKA -l ja --raw > transcript.txt`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd, args[0])
	},
}

// setup loads configuration and logging once flags are parsed
func setup(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	config = internal.InitConfig(configFile)

	if err := internal.HandleVerboseFlag(cmd, config); err != nil {
		return err
	}
	if err := internal.HandleQuietFlag(cmd, config); err != nil {
		return err
	}

	// Ensure XDG directories exist
	if err := internal.EnsureDirs(config.ConfigDir, config.CacheDir); err != nil {
		return fmt.Errorf("creating XDG directories: %w", err)
	}

	// Ensure default config exists in XDG config directory
	if configFile == "" {
		if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
		}
	}

	_, closeFn, err := internal.InitLogging(config)
	if err != nil {
		return err
	}
	closeLog = closeFn
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Cancel in-flight requests on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addSummaryFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $XDG_CONFIG_HOME/ytsummary/config.toml)")
}
