// Package errors contains helper functions for wrapping errors with stack traces, stack output, exit codes and panic recovery.
package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

const (
	// ExitCodeRuntime is returned for any fatal error raised while filtering.
	ExitCodeRuntime = 1
	// ExitCodeUsage is returned when the command line could not be understood.
	ExitCodeUsage = 2
)

// New creates a new error from the given value and wraps it with a stack trace.
// If the value is an error that already contains a stack trace, it is returned as is.
// If the value is nil, New returns nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf creates a new error with the given format and wraps it with a stack trace.
// The %w verb is supported, the wrapped error stays reachable through errors.Is and errors.As.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// ErrorWithExitCode is a custom error that is used to specify the app exit code.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

// NewErrorWithExitCode wraps the given error so that the app exits with the given code.
func NewErrorWithExitCode(err error, exitCode int) error {
	if err == nil {
		return nil
	}

	return &ErrorWithExitCode{Err: err, ExitCode: exitCode}
}

func (err *ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err *ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// ExitCode returns the exit code the app should terminate with for the given error.
// A nil error gives 0, an error without an explicit code gives ExitCodeRuntime.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitCodeErr *ErrorWithExitCode
	if As(err, &exitCodeErr) {
		return exitCodeErr.ExitCode
	}

	return ExitCodeRuntime
}
