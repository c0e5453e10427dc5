package internal

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadataProvider(t *testing.T) {
	innertube := NewInnerTube(http.DefaultClient, DefaultClientProfile)

	tests := []struct {
		backend string
		want    any
		wantErr bool
	}{
		{backend: "", want: &InnerTubeMetadata{}},
		{backend: BackendInnerTube, want: &InnerTubeMetadata{}},
		{backend: BackendKkdai, want: &KkdaiMetadata{}},
		{backend: BackendYtDlp, want: &YtDlpMetadata{}},
		{backend: "invidious", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			provider, err := NewMetadataProvider(tt.backend, innertube, http.DefaultClient, false)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown metadata backend")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, provider)
		})
	}
}

func TestKkdaiExtractVideoID(t *testing.T) {
	metadata := NewKkdaiMetadata(http.DefaultClient)

	id, err := metadata.ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	_, err = metadata.ExtractVideoID("https://example.com/x")
	assert.ErrorIs(t, err, ErrInvalidVideoID)
}

func TestParseYtDlpVideo(t *testing.T) {
	video, err := parseYtDlpVideo([]byte(`{"id":"dQw4w9WgXcQ","title":"Never Gonna","duration":212.6}`))
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.ID)
	assert.InDelta(t, 212.6, video.Duration, 0.001)

	_, err = parseYtDlpVideo([]byte(`{"id":"live","duration":0}`))
	assert.Error(t, err)

	_, err = parseYtDlpVideo([]byte(`not json`))
	assert.Error(t, err)
}

func TestYtDlpMetadataInstallFailure(t *testing.T) {
	attempts := 0
	metadata := NewYtDlpMetadata(false)
	metadata.install = func(ctx context.Context) error {
		attempts++
		return errors.New("rate limited")
	}

	for range 2 {
		_, err := metadata.DurationSeconds(context.Background(), testVideoURL)
		require.Error(t, err)
		assert.ErrorContains(t, err, "installing yt-dlp")
	}
	assert.Equal(t, 2, attempts, "a failed install is retried")
}

func TestYtDlpMetadataInstallFailureIsMetadataLookup(t *testing.T) {
	metadata := NewYtDlpMetadata(false)
	metadata.install = func(ctx context.Context) error {
		return context.Canceled
	}
	transcripts := &fakeTranscripts{list: testList(testTrack("en", false))}
	resolver := NewResolver(metadata, transcripts, DefaultLanguages, WithLogger(quietLogger()))

	var err error
	require.NotPanics(t, func() {
		_, err = resolver.Summarize(context.Background(), testVideoURL, "es")
	})
	requireFailure(t, err, FailureMetadataLookup)
	assert.Zero(t, transcripts.listCalls)
}

func TestYtDlpMetadataInstallsOnce(t *testing.T) {
	attempts := 0
	metadata := NewYtDlpMetadata(false)
	metadata.install = func(ctx context.Context) error {
		attempts++
		return nil
	}

	require.NoError(t, metadata.ensureInstalled(context.Background()))
	require.NoError(t, metadata.ensureInstalled(context.Background()))
	assert.Equal(t, 1, attempts)
}
