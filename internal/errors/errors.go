// Package errors provides standardized error handling for the file browser.
// It defines the error kinds the core can produce and helpers for creating,
// wrapping, and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Re-exported from the standard errors package for convenience.
var (
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Kind classifies an error.
type Kind int

const (
	Unknown Kind = iota
	// PathNotFound: a user-supplied path did not resolve to anything.
	PathNotFound
	// ScanFailure: a directory could not be enumerated.
	ScanFailure
	// InvalidConfig: a configuration value could not be used.
	InvalidConfig
	// ExecFailed: the open command could not be started.
	ExecFailed
)

// ApplicationError is the base type for all application errors.
type ApplicationError struct {
	msg  string
	err  error
	kind Kind
}

func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error.
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the error's classification.
func (e *ApplicationError) Kind() Kind {
	return e.kind
}

// PathError is an error tied to a filesystem path.
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates an error carrying the offending path.
func NewPathError(msg, path string, kind Kind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		path:             path,
	}
}

func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error.
func (e *PathError) Path() string {
	return e.path
}

// ConfigError is an error tied to a configuration parameter.
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates an error carrying the offending parameter name.
func NewConfigError(msg, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: InvalidConfig},
		param:            param,
	}
}

func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error.
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message.
func New(msg string) error {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Newf creates a new error with a formatted message.
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: Unknown}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: Unknown}
}

// Wrapf wraps an existing error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: Unknown}
}

func kindOf(err error) Kind {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Kind()
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Kind()
	}
	var ae *ApplicationError
	if errors.As(err, &ae) {
		return ae.Kind()
	}
	return Unknown
}

// IsPathNotFound checks whether err means a path failed to resolve.
func IsPathNotFound(err error) bool {
	return kindOf(err) == PathNotFound
}

// IsScanFailure checks whether err came from an unreadable directory.
func IsScanFailure(err error) bool {
	return kindOf(err) == ScanFailure
}

// IsInvalidConfig checks whether err came from bad configuration.
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}
