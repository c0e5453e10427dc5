package internal

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSpinner struct {
	steps    []string
	finished bool
}

func (s *recordingSpinner) Describe(description string) { s.steps = append(s.steps, description) }
func (s *recordingSpinner) Advance()                    {}
func (s *recordingSpinner) Finish()                     { s.finished = true }

type recordingUI struct {
	spinner *recordingSpinner
}

func (ui *recordingUI) NewSpinner(description string) Spinner {
	ui.spinner = &recordingSpinner{steps: []string{description}}
	return ui.spinner
}
func (ui *recordingUI) Verbose(format string, args ...any) {}
func (ui *recordingUI) Println(args ...any)                {}

func testConfig() *Config {
	return &Config{
		Languages:       []string{"en", "es"},
		MetadataBackend: BackendInnerTube,
		Client:          DefaultClientProfile,
		HTTPTimeout:     time.Second,
	}
}

func newTestApp(t *testing.T, metadata VideoMetadataProvider, transcripts TranscriptProvider, opts ...AppOption) *App {
	t.Helper()
	options := append([]AppOption{
		WithMetadataProvider(metadata),
		WithTranscriptProvider(transcripts),
		WithAppLogger(quietLogger()),
	}, opts...)
	app, err := NewApp(testConfig(), options...)
	require.NoError(t, err)
	return app
}

func TestNewAppRejectsUnknownBackend(t *testing.T) {
	config := testConfig()
	config.MetadataBackend = "invidious"

	_, err := NewApp(config)
	assert.Error(t, err)
}

func TestNewAppDefaults(t *testing.T) {
	app, err := NewApp(testConfig(), WithAppLogger(quietLogger()))
	require.NoError(t, err)

	assert.IsType(t, &InnerTubeMetadata{}, app.metadata)
	assert.IsType(t, &YouTubeTranscripts{}, app.transcripts)
	assert.Equal(t, []string{"en", "es"}, app.resolver.Languages())
	assert.NotNil(t, app.Plugin())
}

func TestAppSummarizeWithStatus(t *testing.T) {
	ui := &recordingUI{}
	transcripts := &fakeTranscripts{list: testList(testTrack("en", false)), text: "hola"}
	app := newTestApp(t, &fakeMetadata{duration: 100}, transcripts, WithUI(ui))

	text, err := app.SummarizeWithStatus(context.Background(), testVideoURL, "es", true)
	require.NoError(t, err)
	assert.Equal(t, "hola", text)

	require.NotNil(t, ui.spinner)
	assert.True(t, ui.spinner.finished)
	assert.Contains(t, ui.spinner.steps, "Fetching transcript...")
}

func TestAppPluginUsesConfiguredLanguages(t *testing.T) {
	transcripts := &fakeTranscripts{list: testList(testTrack("es", false), testTrack("en", false)), text: "bonjour"}
	app := newTestApp(t, &fakeMetadata{duration: 100}, transcripts)

	result, err := app.Plugin().Execute(context.Background(), FunctionName, nil, map[string]any{
		ArgYouTubeLink:    testVideoURL,
		ArgTargetLanguage: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "bonjour", result)
	assert.Equal(t, "en", transcripts.fetched.LanguageCode)
}

func TestAppMetadata(t *testing.T) {
	t.Run("eligible", func(t *testing.T) {
		transcripts := &fakeTranscripts{list: testList(testTrack("en", true), testTrack("de", false))}
		app := newTestApp(t, &fakeMetadata{duration: 600}, transcripts)

		report, err := app.Metadata(context.Background(), testVideoURL)
		require.NoError(t, err)

		assert.Equal(t, "dQw4w9WgXcQ", report.VideoID)
		assert.Equal(t, 600, report.DurationSeconds)
		assert.Equal(t, MaxVideoDuration, report.MaxDurationSeconds)
		assert.True(t, report.Eligible)
		require.NotNil(t, report.SelectedTrack)
		assert.Equal(t, "en", report.SelectedTrack.LanguageCode)
		assert.Len(t, report.Tracks, 2)
		assert.Empty(t, report.Reason)
	})

	t.Run("too long skips listing", func(t *testing.T) {
		transcripts := &fakeTranscripts{list: testList(testTrack("en", false))}
		app := newTestApp(t, &fakeMetadata{duration: 2701}, transcripts)

		report, err := app.Metadata(context.Background(), testVideoURL)
		require.NoError(t, err)
		assert.False(t, report.Eligible)
		assert.Equal(t, "Video is too long", report.Reason)
		assert.Zero(t, transcripts.listCalls)
	})

	t.Run("no preferred language", func(t *testing.T) {
		transcripts := &fakeTranscripts{list: testList(testTrack("fr", false))}
		app := newTestApp(t, &fakeMetadata{duration: 60}, transcripts)

		report, err := app.Metadata(context.Background(), testVideoURL)
		require.NoError(t, err)
		assert.False(t, report.Eligible)
		assert.Equal(t, "No transcript found", report.Reason)
		assert.Len(t, report.Tracks, 1)
	})

	t.Run("transcripts disabled", func(t *testing.T) {
		transcripts := &fakeTranscripts{listErr: fmt.Errorf("%w: x", ErrTranscriptsDisabled)}
		app := newTestApp(t, &fakeMetadata{duration: 60}, transcripts)

		report, err := app.Metadata(context.Background(), testVideoURL)
		require.NoError(t, err)
		assert.Equal(t, "Video unavailable", report.Reason)
		assert.Empty(t, report.Tracks)
	})

	t.Run("lookup failure", func(t *testing.T) {
		app := newTestApp(t, &fakeMetadata{err: errors.New("timeout")}, &fakeTranscripts{})

		_, err := app.Metadata(context.Background(), testVideoURL)
		requireFailure(t, err, FailureMetadataLookup)
	})

	t.Run("invalid link", func(t *testing.T) {
		app := newTestApp(t, &fakeMetadata{duration: 60}, &fakeTranscripts{})

		_, err := app.Metadata(context.Background(), "https://example.com/video")
		requireFailure(t, err, FailureInvalidLink)
	})
}
