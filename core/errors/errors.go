// Package errors provides standardized error types for the export
// engine. Every failure crosses the engine boundary as one of these
// types, so callers can tell bad input or environment apart from an
// exporter misconfiguration.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNoManuscript indicates no document was supplied to export.
	ErrNoManuscript = errors.New("no manuscript loaded")
	// ErrUnsupportedFormat indicates an unregistered format name.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidInput indicates invalid input or validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMisconfigured indicates broken exporter wiring, distinct from
	// user-facing errors.
	ErrMisconfigured = errors.New("exporter misconfigured")
)

// ValidationError represents an input validation error with context.
type ValidationError struct {
	Field   string // Field that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying sentinel, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedFormatError reports an export format name with no registry
// entry.
type UnsupportedFormatError struct {
	Format    string   // Requested format name
	Supported []string // Registered format names
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// IOError represents an artifact write failure with context.
type IOError struct {
	Operation string // Operation being performed (e.g., "write", "rename")
	Path      string // Target path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// InternalError represents an internal inconsistency, such as a
// registered format whose emitter factory produced nothing. It is a
// distinct category so UIs can render "exporter misconfigured" instead
// of blaming the user's input.
type InternalError struct {
	Component string // Component that is inconsistent
	Message   string // Error details
}

func (e *InternalError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("internal inconsistency in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("internal inconsistency: %s", e.Message)
}

func (e *InternalError) Unwrap() error {
	return ErrMisconfigured
}

// Helper constructors

// NewValidation creates a ValidationError.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewUnsupportedFormat creates an UnsupportedFormatError.
func NewUnsupportedFormat(format string, supported []string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Format: format, Supported: supported}
}

// NewIO creates an IOError.
func NewIO(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// NewInternal creates an InternalError.
func NewInternal(component, message string) *InternalError {
	return &InternalError{Component: component, Message: message}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
