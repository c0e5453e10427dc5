package internal

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID derives the canonical video ID from a YouTube URL.
// A bare video ID is returned unchanged, so extraction is idempotent.
func ExtractVideoID(videoURL string) (string, error) {
	videoURL = strings.TrimSpace(videoURL)
	if IsValidYouTubeID(videoURL) {
		return videoURL, nil
	}

	u, err := url.Parse(videoURL)
	if err == nil && u.Host == "" && !strings.Contains(videoURL, "://") {
		// youtu.be/ID and www.youtube.com/watch?v=ID
		u, err = url.Parse("https://" + videoURL)
	}
	if err != nil {
		return "", fmt.Errorf("%w: parsing URL: %v", ErrInvalidVideoID, err)
	}

	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "m.", "music."} {
		host = strings.TrimPrefix(host, prefix)
	}

	var id string
	switch host {
	case "youtu.be":
		id = firstPathSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 {
			switch parts[0] {
			case "shorts", "embed", "live", "v":
				id = parts[1]
			}
		}
	default:
		return "", fmt.Errorf("%w: not a YouTube URL: %s", ErrInvalidVideoID, videoURL)
	}

	if !IsValidYouTubeID(id) {
		return "", fmt.Errorf("%w: could not extract video ID from URL: %s", ErrInvalidVideoID, videoURL)
	}
	return id, nil
}

func firstPathSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

// IsValidYouTubeID checks if a string looks like a valid YouTube video ID
func IsValidYouTubeID(id string) bool {
	// 11 characters of alphanumerics, hyphens and underscores
	return videoIDPattern.MatchString(id)
}

// getTerminalWidth gets terminal width with fallback
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}

	if width > 10 {
		return width - 4
	}

	return width
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RenderMarkdown renders content with glamour, wrapped to the terminal width
func RenderMarkdown(content string) (string, error) {
	width := getTerminalWidth()
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.EnvColorProfile()),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}

	renderedContent, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return renderedContent, nil
}

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}
