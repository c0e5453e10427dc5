package internal

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kkdai/youtube/v2"
)

// VideoMetadataProvider looks up video duration and derives video IDs from links
type VideoMetadataProvider interface {
	DurationSeconds(ctx context.Context, videoURL string) (int, error)
	ExtractVideoID(videoURL string) (string, error)
}

// Metadata backends selectable through the metadata_backend setting
const (
	BackendInnerTube = "innertube"
	BackendKkdai     = "kkdai"
	BackendYtDlp     = "ytdlp"
)

// NewMetadataProvider builds the metadata provider configured by backend
func NewMetadataProvider(backend string, innertube *InnerTube, httpClient *http.Client, verbose bool) (VideoMetadataProvider, error) {
	switch backend {
	case "", BackendInnerTube:
		return NewInnerTubeMetadata(innertube), nil
	case BackendKkdai:
		return NewKkdaiMetadata(httpClient), nil
	case BackendYtDlp:
		return NewYtDlpMetadata(verbose), nil
	default:
		return nil, fmt.Errorf("unknown metadata backend: %s (supported: %s, %s, %s)",
			backend, BackendInnerTube, BackendKkdai, BackendYtDlp)
	}
}

// InnerTubeMetadata reads the duration from the player response's video details
type InnerTubeMetadata struct {
	innertube *InnerTube
}

// NewInnerTubeMetadata creates a metadata provider backed by the innertube client
func NewInnerTubeMetadata(innertube *InnerTube) *InnerTubeMetadata {
	return &InnerTubeMetadata{innertube: innertube}
}

// DurationSeconds returns the video length in seconds
func (m *InnerTubeMetadata) DurationSeconds(ctx context.Context, videoURL string) (int, error) {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return 0, err
	}

	player, err := m.innertube.player(ctx, videoID)
	if err != nil {
		return 0, err
	}
	if !player.playable() {
		return 0, fmt.Errorf("%w: %s (%s: %s)", ErrVideoUnavailable, videoID,
			player.PlayabilityStatus.Status, player.PlayabilityStatus.Reason)
	}

	seconds, err := strconv.Atoi(player.VideoDetails.LengthSeconds)
	if err != nil {
		return 0, fmt.Errorf("parsing video length %q: %w", player.VideoDetails.LengthSeconds, err)
	}
	return seconds, nil
}

// ExtractVideoID derives the video ID from a YouTube link
func (m *InnerTubeMetadata) ExtractVideoID(videoURL string) (string, error) {
	return ExtractVideoID(videoURL)
}

// KkdaiMetadata uses github.com/kkdai/youtube to resolve video details
type KkdaiMetadata struct {
	client *youtube.Client
}

// NewKkdaiMetadata creates a metadata provider backed by kkdai/youtube
func NewKkdaiMetadata(httpClient *http.Client) *KkdaiMetadata {
	return &KkdaiMetadata{client: &youtube.Client{HTTPClient: httpClient}}
}

// DurationSeconds returns the video length in seconds
func (m *KkdaiMetadata) DurationSeconds(ctx context.Context, videoURL string) (int, error) {
	video, err := m.client.GetVideoContext(ctx, videoURL)
	if err != nil {
		return 0, fmt.Errorf("getting video: %w", err)
	}
	return int(video.Duration.Seconds()), nil
}

// ExtractVideoID derives the video ID from a YouTube link
func (m *KkdaiMetadata) ExtractVideoID(videoURL string) (string, error) {
	id, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidVideoID, err)
	}
	return id, nil
}
