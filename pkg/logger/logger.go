// Package logger provides progress logging for the cleaner.
package logger

import (
	"fmt"
	"io"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

type noopLogger struct{}

// NewNoopLogger creates a logger that discards every message.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger serialises messages to an io.Writer, one per line.
type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterLogger creates a logger that writes to w.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

// Logf writes a formatted message followed by a newline.
func (l *writerLogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}
