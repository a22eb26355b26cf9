// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ktmlm/RUC/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandlerLocked())
}

// SetJSON switches between JSON and pretty logging.
// The output destination set by SetOutput is preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandlerLocked())
}

// newHandlerLocked builds the handler for the current mode and output.
// Must be called with l.mu held.
func (l *Logger) newHandlerLocked() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(chainMessages(err)))
}

// chainMessages collects one message per link of the error chain. Errors
// that cannot report a raw message contribute their full Error() text and
// end the traversal.
func chainMessages(err error) []string {
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

// formatChain renders the collected messages hierarchically: the main error
// first, then each cause indented under a "Caused by:" header.
func formatChain(messages []string) string {
	var formatted []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			// Indent continuation lines to align with "Error: "
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}

		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}

	return strings.Join(formatted, "\n")
}
