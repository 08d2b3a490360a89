package errors

import (
	"errors"
	"fmt"
)

// Common errors that can be used across packages
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError represents an error that occurs during validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FileError represents an error that occurs during file operations
type FileError struct {
	Path    string
	Op      string
	Wrapped error
}

func (e *FileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s operation failed on %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("%s operation failed on %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Wrapped
}

// NewFileError creates a new FileError
func NewFileError(path, op string, wrapped error) error {
	return &FileError{
		Path:    path,
		Op:      op,
		Wrapped: wrapped,
	}
}

// ConfigParseError is returned when the override file exists but cannot be parsed.
type ConfigParseError struct {
	Path    string
	Wrapped error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Wrapped)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Wrapped
}

// NewConfigParseError creates a new ConfigParseError
func NewConfigParseError(path string, wrapped error) error {
	return &ConfigParseError{Path: path, Wrapped: wrapped}
}

// ConfigWriteError is returned when the override file cannot be written.
type ConfigWriteError struct {
	Path    string
	Wrapped error
}

func (e *ConfigWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Wrapped)
}

func (e *ConfigWriteError) Unwrap() error {
	return e.Wrapped
}

// NewConfigWriteError creates a new ConfigWriteError
func NewConfigWriteError(path string, wrapped error) error {
	return &ConfigWriteError{Path: path, Wrapped: wrapped}
}

// AdapterLoadError means a package manager's configuration subsystem could
// not be started at all (missing binary, unreadable config).
type AdapterLoadError struct {
	Tool    string
	Wrapped error
}

func (e *AdapterLoadError) Error() string {
	return fmt.Sprintf("failed to load %s config: %v", e.Tool, e.Wrapped)
}

func (e *AdapterLoadError) Unwrap() error {
	return e.Wrapped
}

// NewAdapterLoadError creates a new AdapterLoadError
func NewAdapterLoadError(tool string, wrapped error) error {
	return &AdapterLoadError{Tool: tool, Wrapped: wrapped}
}

// AdapterConfigError means a get or set of a package manager setting failed.
type AdapterConfigError struct {
	Tool    string
	Op      string
	Wrapped error
}

func (e *AdapterConfigError) Error() string {
	return fmt.Sprintf("%s config %s failed: %v", e.Tool, e.Op, e.Wrapped)
}

func (e *AdapterConfigError) Unwrap() error {
	return e.Wrapped
}

// NewAdapterConfigError creates a new AdapterConfigError
func NewAdapterConfigError(tool, op string, wrapped error) error {
	return &AdapterConfigError{Tool: tool, Op: op, Wrapped: wrapped}
}

// ProbeError records a failed latency probe against a registry.
type ProbeError struct {
	Registry string
	Wrapped  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe of %s failed: %v", e.Registry, e.Wrapped)
}

func (e *ProbeError) Unwrap() error {
	return e.Wrapped
}

// NewProbeError creates a new ProbeError
func NewProbeError(registry string, wrapped error) error {
	return &ProbeError{Registry: registry, Wrapped: wrapped}
}

// Is reports whether target matches err.
// It enables errors.Is() to work with our custom error types.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It enables errors.As() to work with our custom error types.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join returns an error wrapping all non-nil errs, or nil if there are none.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
