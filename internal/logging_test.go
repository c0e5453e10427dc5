package internal

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("chatty"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "warn", false).Info("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, "warn", true).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestInitLoggingToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	config := &Config{
		LogLevel: "info",
		LogFile:  true,
		LogPath:  filepath.Join(t.TempDir(), "cache", "ytsummary.log"),
	}

	logger, closeLog, err := InitLogging(config)
	require.NoError(t, err)
	logger.Info("hello", slog.String("request_id", "abc"))
	require.NoError(t, closeLog())

	data, err := os.ReadFile(config.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "request_id=abc")
}
