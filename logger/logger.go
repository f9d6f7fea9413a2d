// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

// ------------------- logger initialization -------------------

// configure points every logger at w.
func configure(w io.Writer) {
	Info = log.New(w, "INFO: ", flags)
	Warn = log.New(w, "WARN: ", flags)
	Error = log.New(w, "ERROR: ", flags)
	Debug = log.New(w, "DEBUG: ", flags)
}

// InitLogger reinitializes the logging system. With an empty dir the loggers
// write to stdout only. Otherwise it:
// - Ensures dir exists.
// - Creates a timestamped log file in dir.
// - Writes logs to both the file and stdout.
func InitLogger(dir string) error {
	if dir == "" {
		configure(os.Stdout)
		return nil
	}

	// ensure logs directory exists
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	// create a timestamped log file
	logFileName := filepath.Join(dir, time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}

	configure(io.MultiWriter(os.Stdout, file))
	return nil
}

// SetLogLevel adjusts the Debug logger’s output depending on environment.
// In production debug output is discarded entirely.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// init gives every package usable loggers before main has loaded its
// configuration (and in tests, which never call InitLogger).
func init() {
	configure(os.Stdout)
}
