package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger wraps Go's standard log with console output and an optional file sink
type Logger struct {
	Info  *log.Logger
	Error *log.Logger
	File  *os.File
	Path  string
}

// NewLogger initializes loggers for info and error messages. When logDir is
// empty no file is created and messages go to the console only, so a default
// run leaves the filesystem untouched.
func NewLogger(logDir string) (*Logger, error) {
	if logDir == "" {
		return &Logger{}, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %v", logDir, err)
	}

	// Create timestamped log file
	timestamp := time.Now().Format("20060102_150405")
	logFile := filepath.Join(logDir, "bootstrap_"+timestamp+".log")

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %v", logFile, err)
	}

	return &Logger{
		Info:  log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		Error: log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		File:  file,
		Path:  logFile,
	}, nil
}

// Infof logs informational messages (console + file when enabled)
func (l *Logger) Infof(format string, v ...interface{}) {
	log.Printf("[INFO] "+format, v...) // Console
	if l.Info != nil {
		l.Info.Printf(format, v...) // File
	}
}

// Errorf logs error messages (console + file when enabled)
func (l *Logger) Errorf(format string, v ...interface{}) {
	log.Printf("[ERROR] "+format, v...) // Console
	if l.Error != nil {
		l.Error.Printf(format, v...) // File
	}
}

// Close closes the log file when done
func (l *Logger) Close() {
	if l.File != nil {
		l.File.Close()
	}
}
