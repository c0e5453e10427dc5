package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// parseLogLevel maps a config level name to a slog level, defaulting to info
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a text logger writing to w. Verbose forces debug level.
func NewLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := parseLogLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// InitLogging installs the default logger described by config.
// Logs go to stderr unless log_file is set, in which case they are appended to LogPath.
// The returned close function must be called before exit.
func InitLogging(config *Config) (*slog.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if config.LogFile {
		if err := EnsureDirs(filepath.Dir(config.LogPath)); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(config.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := NewLogger(w, config.LogLevel, config.Verbose)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
