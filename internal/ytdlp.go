package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/lrstanley/go-ytdlp"
)

// ytdlpVideo is the subset of yt-dlp's JSON dump used for eligibility checks
type ytdlpVideo struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

// YtDlpMetadata fetches video details by running yt-dlp
type YtDlpMetadata struct {
	verbose bool
	install func(ctx context.Context) error

	mu        sync.Mutex
	installed bool
}

// NewYtDlpMetadata creates a metadata provider backed by yt-dlp
func NewYtDlpMetadata(verbose bool) *YtDlpMetadata {
	return &YtDlpMetadata{verbose: verbose, install: installYtDlp}
}

func installYtDlp(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

// ensureInstalled installs yt-dlp on first use. A failed install is retried on the next call.
func (m *YtDlpMetadata) ensureInstalled(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.installed {
		return nil
	}
	if err := m.install(ctx); err != nil {
		return fmt.Errorf("installing yt-dlp: %w", err)
	}
	m.installed = true
	return nil
}

// DurationSeconds returns the video length in seconds
func (m *YtDlpMetadata) DurationSeconds(ctx context.Context, videoURL string) (int, error) {
	if err := m.ensureInstalled(ctx); err != nil {
		return 0, err
	}

	dl := ytdlp.New().
		DumpSingleJSON(). // Get all info in JSON format
		NoPlaylist().     // Don't process playlists
		SkipDownload()    // Don't download the actual video

	result, err := dl.Run(ctx, videoURL)
	if err != nil {
		if m.verbose && result != nil {
			slog.Debug("yt-dlp metadata extraction failed", slog.String("stderr", result.Stderr))
		}
		return 0, fmt.Errorf("extracting video metadata: %w", err)
	}

	video, err := parseYtDlpVideo([]byte(result.Stdout))
	if err != nil {
		return 0, err
	}
	return int(math.Round(video.Duration)), nil
}

// ExtractVideoID derives the video ID from a YouTube link
func (m *YtDlpMetadata) ExtractVideoID(videoURL string) (string, error) {
	return ExtractVideoID(videoURL)
}

func parseYtDlpVideo(data []byte) (*ytdlpVideo, error) {
	var video ytdlpVideo
	if err := json.Unmarshal(data, &video); err != nil {
		return nil, fmt.Errorf("parsing video metadata: %w", err)
	}
	if video.Duration <= 0 {
		return nil, fmt.Errorf("video metadata for %q has no duration", video.ID)
	}
	return &video, nil
}
