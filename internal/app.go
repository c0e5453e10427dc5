package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// App holds the application state and dependencies
type App struct {
	config      *Config
	metadata    VideoMetadataProvider
	transcripts TranscriptProvider
	resolver    *Resolver
	plugin      *Plugin
	ui          UIManager
	logger      *slog.Logger
}

// AppOption customizes App creation
type AppOption func(*App)

// WithMetadataProvider sets a custom video metadata provider
func WithMetadataProvider(metadata VideoMetadataProvider) AppOption {
	return func(a *App) {
		a.metadata = metadata
	}
}

// WithTranscriptProvider sets a custom transcript provider
func WithTranscriptProvider(transcripts TranscriptProvider) AppOption {
	return func(a *App) {
		a.transcripts = transcripts
	}
}

// WithUI sets a custom UI manager
func WithUI(ui UIManager) AppOption {
	return func(a *App) {
		a.ui = ui
	}
}

// WithAppLogger sets the logger passed down to the resolver
func WithAppLogger(logger *slog.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) (*App, error) {
	app := &App{
		config: config,
		ui:     NewUIManager(config.Verbose, config.Quiet),
		logger: slog.Default(),
	}

	// Apply any custom options
	for _, option := range options {
		option(app)
	}

	if app.metadata == nil || app.transcripts == nil {
		httpClient := &http.Client{Timeout: config.HTTPTimeout}
		innertube := NewInnerTube(httpClient, config.Client)

		if app.metadata == nil {
			metadata, err := NewMetadataProvider(config.MetadataBackend, innertube, httpClient, config.Verbose)
			if err != nil {
				return nil, err
			}
			app.metadata = metadata
		}
		if app.transcripts == nil {
			app.transcripts = NewYouTubeTranscripts(innertube)
		}
	}

	app.resolver = NewResolver(app.metadata, app.transcripts, config.Languages, WithLogger(app.logger))
	app.plugin = NewPlugin(app.resolver)

	return app, nil
}

// UI returns the UI manager status output goes through
func (app *App) UI() UIManager {
	return app.ui
}

// Plugin returns the chatbot plugin backed by this app
func (app *App) Plugin() *Plugin {
	return app.plugin
}

// Summarize returns the translated transcript of a video
func (app *App) Summarize(ctx context.Context, videoURL, targetLanguage string) (string, error) {
	return app.SummarizeWithStatus(ctx, videoURL, targetLanguage, false)
}

// SummarizeWithStatus returns the translated transcript with an optional status spinner
func (app *App) SummarizeWithStatus(ctx context.Context, videoURL, targetLanguage string, showStatus bool) (string, error) {
	if !showStatus {
		return app.resolver.Summarize(ctx, videoURL, targetLanguage)
	}

	spinner := app.ui.NewSpinner("Starting...")
	defer spinner.Finish()

	resolver := app.resolver.WithProgress(func(step string) {
		spinner.Describe(step)
		spinner.Advance()
		app.ui.Verbose("%s\n", step)
	})
	return resolver.Summarize(ctx, videoURL, targetLanguage)
}

// VideoReport describes what the pipeline would see for a video
type VideoReport struct {
	VideoID              string            `json:"video_id"`
	DurationSeconds      int               `json:"duration_seconds"`
	MaxDurationSeconds   int               `json:"max_duration_seconds"`
	Eligible             bool              `json:"eligible"`
	SelectedTrack        *TranscriptTrack  `json:"selected_track,omitempty"`
	Tracks               []TranscriptTrack `json:"tracks"`
	TranslationLanguages []Language        `json:"translation_languages"`
	Reason               string            `json:"reason,omitempty"`
}

// Metadata inspects a video: its length, its transcripts and which one would be selected.
// Ineligible videos are reported, not returned as errors.
func (app *App) Metadata(ctx context.Context, videoURL string) (*VideoReport, error) {
	return app.MetadataWithStatus(ctx, videoURL, false)
}

// MetadataWithStatus inspects a video with an optional status spinner
func (app *App) MetadataWithStatus(ctx context.Context, videoURL string, showStatus bool) (*VideoReport, error) {
	var spinner Spinner
	if showStatus {
		spinner = app.ui.NewSpinner("Fetching video metadata...")
		defer spinner.Finish()
	}

	videoID, err := app.metadata.ExtractVideoID(videoURL)
	if err != nil {
		return nil, &SummaryError{Kind: FailureInvalidLink, Err: err}
	}

	duration, err := app.metadata.DurationSeconds(ctx, videoURL)
	if err != nil {
		return nil, &SummaryError{Kind: FailureMetadataLookup, Err: err}
	}

	report := &VideoReport{
		VideoID:            videoID,
		DurationSeconds:    duration,
		MaxDurationSeconds: MaxVideoDuration,
		Tracks:             []TranscriptTrack{},
	}
	if duration > MaxVideoDuration {
		report.Reason = FailureVideoTooLong.Message()
		return report, nil
	}

	if spinner != nil {
		spinner.Describe("Listing transcripts...")
		spinner.Advance()
	}

	list, err := app.transcripts.ListTranscripts(ctx, videoID)
	if err != nil {
		kind := classifyTranscriptError(err)
		if kind == FailureSummaryGeneration {
			return nil, fmt.Errorf("listing transcripts: %w", err)
		}
		report.Reason = kind.Message()
		return report, nil
	}
	report.Tracks = list.Tracks()
	report.TranslationLanguages = list.TranslationLanguages

	track, err := app.transcripts.SelectByLanguagePreference(list, app.config.Languages)
	if err != nil {
		if !errors.Is(err, ErrNoTranscriptFound) {
			return nil, err
		}
		report.Reason = FailureNoTranscriptFound.Message()
		return report, nil
	}
	report.SelectedTrack = &track
	report.Eligible = true

	return report, nil
}
