// Package logs configures the file-backed application logger. The TUI owns
// stdout, so log output always goes to a rotating file under the app data
// directory.
package logs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath returns the log file path under the user data directory,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".local", "share", "inout-extractor")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "inout-extractor.log"), nil
}

// Setup returns a logger writing JSON lines to logPath with rotation.
func Setup(logPath string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	w := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	return zerolog.New(w).Level(zerolog.InfoLevel).With().
		Timestamp().
		Str("svc", "inout-extractor").
		Logger()
}
