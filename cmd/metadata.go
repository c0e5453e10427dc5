package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtzll/ytsummary/internal"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata [URL]",
	Short: "Show a video's length and available transcripts",
	Long: `Show what the summary pipeline sees for a video: its ID and length,
whether it is short enough, the transcripts YouTube lists for it and which
one the configured source languages would select.`,
	Example: `  # Inspect a video
  ytsummary metadata "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  ytsummary metadata tAP1eZYEuKA

  # Save the report to file
  ytsummary metadata tAP1eZYEuKA -o metadata.json

  # Format output as pretty JSON
  ytsummary metadata tAP1eZYEuKA --pretty`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.HandleSourceLanguagesFlag(cmd, config); err != nil {
			return err
		}

		app, err := internal.NewApp(config)
		if err != nil {
			return err
		}

		report, err := app.MetadataWithStatus(cmd.Context(), args[0], !config.Quiet)
		if err != nil {
			return err
		}

		// Convert report to JSON
		var jsonData []byte
		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty {
			jsonData, err = json.MarshalIndent(report, "", "  ")
		} else {
			jsonData, err = json.Marshal(report)
		}
		if err != nil {
			return fmt.Errorf("error converting metadata to JSON: %w", err)
		}

		// Handle output flag
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			return os.WriteFile(outputFile, jsonData, 0644)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	metadataCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	metadataCmd.Flags().Bool("pretty", false, "Format output as pretty JSON")
	internal.AddSourceLanguagesFlag(metadataCmd)
	rootCmd.AddCommand(metadataCmd)
}
