// Package output provides structured output and error handling for the prompt-merge CLI.
package output

import "errors"

// Exit codes, one per failure class:
// 0 = Success (including a clean cancellation of the interactive session)
// 1 = Validation error (duplicate or unknown selection, nothing to merge)
// 2 = Usage error (unrecognized flags, bad arguments)
// 3 = Configuration error (missing templates root, bad config file)
// 4 = I/O error (unreadable source at merge time, unwritable output path)
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitUsage      = 2
	ExitConfig     = 3
	ExitIO         = 4
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates an error for selection problems (exit code 1).
// Use for: duplicate selections, selections naming no catalog entry,
// an empty catalog when a merge was requested.
func NewValidationError(message string) *ExitError {
	return &ExitError{
		Code:    ExitValidation,
		Message: message,
	}
}

// NewUsageError creates an error for bad invocations (exit code 2).
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
	}
}

// NewConfigError creates an error for configuration problems (exit code 3).
// Use for: missing or unreadable templates root, malformed config file.
func NewConfigError(message string) *ExitError {
	return &ExitError{
		Code:    ExitConfig,
		Message: message,
	}
}

// NewIOError creates an error for file system failures (exit code 4).
// Use for: unreadable template sources, unwritable output paths.
func NewIOError(message string) *ExitError {
	return &ExitError{
		Code:    ExitIO,
		Message: message,
	}
}

// NewIOErrorWithCause creates an I/O error wrapping an underlying cause.
func NewIOErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitIO,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil. Untyped errors map to ExitUsage, since the
// only errors that reach main without a class are cobra flag-parse failures.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUsage
}
