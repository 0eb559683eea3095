// Package logging provides the logging abstraction used across the application.
// Components depend on the Logger interface and receive an implementation by
// constructor injection.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger defines the structured logging operations used by the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Discard returns a Logger that drops everything. Useful as a default when a
// caller passes a nil logger.
func Discard() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewLogrusAdapterFromLogger(l)
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger Logger) Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
