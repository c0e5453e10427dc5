package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/ytsummary/internal"
)

func addSummaryFlags(cmd *cobra.Command) {
	internal.AddLanguageFlags(cmd)
	internal.AddSourceLanguagesFlag(cmd)
	internal.AddOutputFlags(cmd)
}

// fetchTranscript runs the pipeline for one link with a status spinner
func fetchTranscript(cmd *cobra.Command, videoURL string) (*internal.App, string, error) {
	targetLanguage, err := internal.TargetLanguage(cmd)
	if err != nil {
		return nil, "", err
	}
	if err := internal.HandleSourceLanguagesFlag(cmd, config); err != nil {
		return nil, "", err
	}

	app, err := internal.NewApp(config)
	if err != nil {
		return nil, "", err
	}

	transcript, err := app.SummarizeWithStatus(cmd.Context(), videoURL, targetLanguage, !config.Quiet)
	return app, transcript, err
}

// runSummary prints the transcript, rendered when stdout is a terminal
func runSummary(cmd *cobra.Command, videoURL string) error {
	_, transcript, err := fetchTranscript(cmd, videoURL)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetBool("raw")
	if raw || !internal.IsTerminal() {
		fmt.Fprintln(cmd.OutOrStdout(), transcript)
		return nil
	}

	rendered, err := internal.RenderMarkdown(transcript)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
