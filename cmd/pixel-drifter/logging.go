package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Stan-breaks/Pixel-drifter/config"
)

// setupLogging routes the standard logger to a rotated file when debug is set, otherwise discards it
// The terminal is in raw mode while the game runs, so logs never go to stdout or stderr
func setupLogging(lc config.LogConfig, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(lc.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", lc.Dir, err)
	}

	logPath := filepath.Join(lc.Dir, lc.File)
	if info, err := os.Stat(logPath); err == nil && info.Size() > lc.MaxSize {
		base := strings.TrimSuffix(lc.File, filepath.Ext(lc.File))
		rotated := filepath.Join(lc.Dir, fmt.Sprintf("%s_%s.log", base, time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, fmt.Errorf("failed to rotate %s: %w", logPath, err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile, nil
}
