// Package errors provides standardized error types and helpers for the webbible tools.
//
// The batch drivers classify every per-file outcome with these types: a
// SkipError (or anything matching ErrSkipped) is not a failure and the file is
// left alone; every other error is logged as a failure and the batch continues.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported document or book
	ErrUnsupported = errors.New("unsupported")
	// ErrSkipped indicates a file that is intentionally not processed
	ErrSkipped = errors.New("skipped")
	// ErrAlreadyConverted indicates a file that already carries the output markers
	ErrAlreadyConverted = errors.New("already converted")
	// ErrExtraction indicates a required fragment could not be extracted
	ErrExtraction = errors.New("extraction failed")
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "book", "file")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
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

// ExtractionError reports a named extraction rule that did not match, or
// matched content that violates the rule's structural assumption.
type ExtractionError struct {
	Rule    string // Name of the extraction rule
	Path    string // File being converted, if known
	Message string // What went wrong
}

func (e *ExtractionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("extract %s from %s: %s", e.Rule, e.Path, e.Message)
	}
	return fmt.Sprintf("extract %s: %s", e.Rule, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return ErrExtraction
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "remove")
	Path      string // File path involved
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

// UnsupportedError represents an unsupported feature or document
type UnsupportedError struct {
	Feature string // Feature or document that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// SkipError marks a file that is deliberately left untouched. It matches
// ErrSkipped and also unwraps to the cause.
type SkipError struct {
	Path string // File that was skipped
	Err  error  // Why it was skipped
}

func (e *SkipError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("skipped %s", e.Path)
	}
	return fmt.Sprintf("skipped %s: %v", e.Path, e.Err)
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// Is reports ErrSkipped as a match.
func (e *SkipError) Is(target error) bool {
	return target == ErrSkipped
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewExtraction creates an ExtractionError
func NewExtraction(rule, path, message string) *ExtractionError {
	return &ExtractionError{
		Rule:    rule,
		Path:    path,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Skip wraps err as a SkipError for path.
func Skip(path string, err error) *SkipError {
	return &SkipError{
		Path: path,
		Err:  err,
	}
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
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
