package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/ytsummary/internal"
)

// specCmd prints the function declarations the plugin registers with a chatbot host
var specCmd = &cobra.Command{
	Use:     "spec",
	Short:   "Print the plugin's function declarations as JSON",
	Example: `  ytsummary spec`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plugin := internal.NewPlugin(nil)

		data, err := json.MarshalIndent(map[string]any{
			"source_name": plugin.SourceName(),
			"functions":   plugin.Spec(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding spec: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(specCmd)
}
