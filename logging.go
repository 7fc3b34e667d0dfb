package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupLogging sends log output to stdout and, when path is set, also to a
// log file with a single rotated history file. It returns the opened log file
// so callers can close it on shutdown.
func setupLogging(path string) (*os.File, error) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if path == "" {
		log.SetOutput(os.Stdout)
		return nil, nil
	}

	// Remove existing history to keep only one backup
	_ = os.Remove(path + ".1")

	// Rotate current log to .1 if present
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("failed to rotate existing log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return f, nil
}
