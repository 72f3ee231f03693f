// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nycdb/nycdb/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "nycdb.log"

// logFile is the currently open log file, if any.
var logFile *os.File

// Init initializes the global slog logger with the given configuration.
// Creates a fresh log file in logDir if destination is "file".
func Init(logDir string, cfg config.LogConfig) error {
	return setup(logDir, cfg, os.O_TRUNC)
}

// Reconfigure replaces the global logger after Init. The log file is
// appended to, so records written since Init are kept.
func Reconfigure(logDir string, cfg config.LogConfig) error {
	return setup(logDir, cfg, os.O_APPEND)
}

func setup(logDir string, cfg config.LogConfig, mode int) error {
	var writer io.Writer
	var file *os.File

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		var err error
		file, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|mode, 0644)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = file

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
