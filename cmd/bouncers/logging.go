package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "bouncers.log"
	maxLogSize  = 10 * 1024 * 1024
)

// renameFile is swapped in tests to force rotation failures
var renameFile = os.Rename

// setupLogging routes the standard logger to logs/bouncers.log when debug is set and discards it otherwise
// The terminal belongs to the renderer, so nothing may reach stdout or stderr while running
// Returns the open log file, or nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("bouncers-%s.log", time.Now().Format("20060102-150405")))
		rotateErr = renameFile(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	// Rotation failure is non-fatal, appending to the oversized file
	if rotateErr != nil {
		log.Printf("log rotation failed: %v", rotateErr)
	}
	return f
}
