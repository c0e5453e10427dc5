package cmd

import (
	"github.com/spf13/cobra"
)

// summarizeCmd is the explicit form of the root command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [URL]",
	Short: "Print a video's transcript translated into the target language",
	Example: `  ytsummary summarize "https://www.youtube.com/watch?v=tAP1eZYEuKA" -l fr
  ytsummary summarize tAP1eZYEuKA -l es --source-langs en`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd, args[0])
	},
}

func init() {
	addSummaryFlags(summarizeCmd)
	rootCmd.AddCommand(summarizeCmd)
}
