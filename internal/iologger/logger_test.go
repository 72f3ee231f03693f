package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.level, parseLevel(v.input), v.input)
	}
}

func TestInitFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "debug", Destination: "file"}
	require.NoError(t, Init(logDir, cfg))

	slog.Debug("hello from test", "key", "value")

	data, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "key=value")
}

func TestInitFileError(t *testing.T) {
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	err := Init(filepath.Join(t.TempDir(), "missing"), cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestReconfigureKeepsRecords(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}
	require.NoError(t, Init(logDir, cfg))
	slog.Info("written at bootstrap")

	cfg.Format = "json"
	require.NoError(t, Reconfigure(logDir, cfg))
	slog.Info("written after reconfigure")

	data, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written at bootstrap")
	assert.Contains(t, string(data), "written after reconfigure")

	// a new run starts with a fresh file
	require.NoError(t, Init(logDir, cfg))
	data, err = os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "written at bootstrap")
}
