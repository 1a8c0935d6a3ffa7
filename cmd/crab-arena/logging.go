package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/crab-arena/engine"
)

const (
	logDir      = "logs"
	logFileName = "crab-arena.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging returns the process logger
// The terminal belongs to the arena, so logs only go to a file and only in
// debug mode; otherwise everything is discarded
func setupLogging(debug bool) (*log.Logger, *os.File) {
	if !debug {
		return engine.DiscardLogger(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return engine.DiscardLogger(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("crab-arena-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return engine.DiscardLogger(), nil
	}

	logger := log.NewWithOptions(file, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "arena",
	})
	return logger, file
}
