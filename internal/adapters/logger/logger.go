// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/modup/internal/ui/style"
)

// messager is implemented by zerr errors and yields the message of one link without its causes.
type messager interface {
	Message() string
}

// Logger implements ports.Logger.
// Output and format can be switched at runtime, e.g. by the --log-json flag.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	jsonMode bool
}

// New creates a Logger writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput redirects the logger. A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between slog's JSON handler and the pretty handler.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild replaces the slog handler. Callers must hold the write lock.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. In pretty mode the cause chain is rendered below the top-level message.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(errorChain(err)))
}

// errorChain splits err into one message per zerr link.
// The first non-zerr error ends the chain with its full text.
func errorChain(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}
	return messages
}

func formatChain(messages []string) string {
	var b strings.Builder

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		switch i {
		case 0:
			b.WriteString("Error: " + lines[0])
			for _, line := range lines[1:] {
				b.WriteString("\n       " + line)
			}
			continue
		case 1:
			b.WriteString("\n\n  Caused by:")
		}

		b.WriteString("\n    " + style.Arrow + " " + lines[0])
		for _, line := range lines[1:] {
			b.WriteString("\n      " + line)
		}
	}

	return b.String()
}
