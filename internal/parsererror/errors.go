// Package parsererror defines the typed errors reported to users.
package parsererror

import (
	"errors"
	"fmt"
)

// ValidationError rejects a user-supplied input as a whole.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ClassificationError wraps a failure of a text classifier.
type ClassificationError struct {
	Provider string
	Text     string
	Err      error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: failed to classify '%s': %v", e.Provider, e.Text, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// ExportError reports a failure writing an export or report file.
type ExportError struct {
	FilePath string
	Format   string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to write %s export to '%s': %v", e.Format, e.FilePath, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
