// Package logging is the shared file logger. Logs go to a dated file under
// ~/.brief/logs rather than stderr so the TUI alt screen stays clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// keepLogs is how many daily log files survive rotation.
const keepLogs = 7

// logger defaults to a silent logger so package-level calls are safe
// before Init runs (tests, library use).
var logger = log.NewWithOptions(io.Discard, log.Options{})

var logFile *os.File

// Init opens today's log file and installs the real logger. The level comes
// from BRIEF_LOG (debug, info, warn, error), defaulting to info.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("find home directory: %w", err)
	}

	dir := filepath.Join(home, ".brief", "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, "brief-"+time.Now().Format("2006-01-02")+".log")
	logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger = log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           levelFromEnv(),
	})
	logger.Info("brief started", "version", "0.1.0")

	rotate(dir)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		logger.Info("brief shutting down")
		logFile.Close()
		logFile = nil
	}
}

func levelFromEnv() log.Level {
	switch os.Getenv("BRIEF_LOG") {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// rotate deletes dated log files beyond the newest keepLogs. Best effort;
// a failed cleanup never blocks startup.
func rotate(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "brief-*.log"))
	if err != nil || len(matches) <= keepLogs {
		return
	}
	// Date-stamped names sort chronologically
	for _, old := range matches[:len(matches)-keepLogs] {
		os.Remove(old)
	}
}

func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }
