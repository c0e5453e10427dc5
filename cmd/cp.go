package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// cpCmd copies the transcript to the system clipboard instead of printing to stdout.
var cpCmd = &cobra.Command{
	Use:   "cp [URL]",
	Short: "Copy a translated transcript to the clipboard",
	Example: `  # Copy the French transcript
  ytsummary cp "https://www.youtube.com/watch?v=tAP1eZYEuKA" -l fr
  ytsummary cp tAP1eZYEuKA -l fr`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, transcript, err := fetchTranscript(cmd, args[0])
		if err != nil {
			return err
		}

		if err := clipboard.WriteAll(transcript); err != nil {
			return fmt.Errorf("copying transcript to clipboard: %w", err)
		}

		app.UI().Println("Transcript copied to clipboard")

		return nil
	},
}

func init() {
	addSummaryFlags(cpCmd)
	rootCmd.AddCommand(cpCmd)
}
