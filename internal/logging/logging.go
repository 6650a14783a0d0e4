// Package logging sets up the rotating debug log file. The TUI owns the
// terminal, so nothing is ever logged to stdout or stderr.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFilePath returns the path to the log file. GITMENU_LOG_FILE overrides
// the default of ~/.gitmenu/logs/gitmenu.log.
func LogFilePath() string {
	if customPath := os.Getenv("GITMENU_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitmenu.log"
	}
	return filepath.Join(homeDir, ".gitmenu", "logs", "gitmenu.log")
}

// NewLogger creates a debug-level slog.Logger writing to a rotating file.
func NewLogger() *slog.Logger {
	writer := &lumberjack.Logger{
		Filename:   LogFilePath(),
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	if maxSize := envInt("GITMENU_LOG_MAX_SIZE"); maxSize > 0 {
		writer.MaxSize = maxSize
	}
	if maxBackups := envInt("GITMENU_LOG_MAX_BACKUPS"); maxBackups > 0 {
		writer.MaxBackups = maxBackups
	}
	if maxAge := envInt("GITMENU_LOG_MAX_AGE"); maxAge > 0 {
		writer.MaxAge = maxAge
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}

func envInt(name string) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return value
}
