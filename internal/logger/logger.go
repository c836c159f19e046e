// Package logger provides leveled logging on top of the standard log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents the severity of log messages
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	currentLevel = INFO
	std          = log.New(os.Stderr, "", log.LstdFlags)
	levelNames   = map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}
)

func init() {
	// Set log level from environment variable
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		SetLevel(levelStr)
	}
}

// SetLevel sets the logging level from a string
func SetLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		currentLevel = DEBUG
	case "INFO":
		currentLevel = INFO
	case "WARN", "WARNING":
		currentLevel = WARN
	case "ERROR":
		currentLevel = ERROR
	case "FATAL":
		currentLevel = FATAL
	default:
		std.Printf("Unknown log level: %s, using INFO", level)
		currentLevel = INFO
	}
}

// GetLevel returns the current log level
func GetLevel() Level {
	return currentLevel
}

// SetOutput redirects log output, primarily for tests
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func logf(level Level, format string, args ...interface{}) {
	if level < currentLevel {
		return
	}

	std.Printf("[%s] %s", levelNames[level], fmt.Sprintf(format, args...))

	if level == FATAL {
		os.Exit(1)
	}
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logf(DEBUG, format, args...)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	logf(INFO, format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logf(WARN, format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logf(ERROR, format, args...)
}

// Fatalf logs a formatted fatal message and exits
func Fatalf(format string, args ...interface{}) {
	logf(FATAL, format, args...)
}
