package logger

import (
	"io"
	"log"
	"os"
)

// Logger is an alias so callers can take a *logger.Logger without importing log.
type Logger = log.Logger

// New returns a logger writing to stderr with a bracketed component prefix.
func New(component string) *Logger {
	return log.New(os.Stderr, "["+component+"] ", log.LstdFlags|log.Lmicroseconds)
}

// Discard returns a logger that drops everything, for tests and muted runs.
func Discard() *Logger {
	return log.New(io.Discard, "", 0)
}
