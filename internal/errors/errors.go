package errors

import (
	"errors"
	"fmt"
)

// Exit codes for sshtint
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitSinkError    = 3
	ExitWatchError   = 4
)

// TintError is the base error type for sshtint
type TintError struct {
	Code    int
	Message string
	Cause   error
}

func (e *TintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TintError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *TintError) ExitCode() int {
	return e.Code
}

// New creates a new TintError
func New(code int, message string) *TintError {
	return &TintError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a TintError
func Wrap(code int, message string, cause error) *TintError {
	return &TintError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for tool settings issues
func ConfigError(message string, cause error) *TintError {
	return Wrap(ExitConfigError, message, cause)
}

// SSHConfigError returns an error for SSH config read failures.
// A missing file is not an error; this is for permission and I/O failures.
func SSHConfigError(path string, cause error) *TintError {
	return Wrap(ExitConfigError, fmt.Sprintf("cannot read ssh config %s", path), cause)
}

// SinkError returns an error for a failed sink write or apply
func SinkError(sink string, cause error) *TintError {
	return Wrap(ExitSinkError, fmt.Sprintf("%s sink failed", sink), cause)
}

// WatchError returns an error for file-watch setup failures
func WatchError(cause error) *TintError {
	return Wrap(ExitWatchError, "config watch failed", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *TintError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return tintErr.ExitCode()
	}
	return ExitGeneralError
}
