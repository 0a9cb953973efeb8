package errors

import (
	"errors"
	"fmt"
	"strings"
)

type stackTracer interface {
	ErrorStack() string
}

// ErrorStack returns the stack traces found in the error chain, including
// every branch of a multi-error, joined by newlines.
func ErrorStack(err error) string {
	var stacks []string

	walk(err, func(err error) bool {
		if tracer, ok := err.(stackTracer); ok {
			stacks = append(stacks, tracer.ErrorStack())
		}

		return true
	})

	return strings.Join(stacks, "\n")
}

// ContainsStackTrace reports whether any error in the chain already carries a stack trace.
func ContainsStackTrace(err error) bool {
	var found bool

	walk(err, func(err error) bool {
		_, found = err.(stackTracer)

		return !found
	})

	return found
}

// Recover converts a panic into an error and passes it to onPanic.
// Must be called directly from a defer statement.
func Recover(onPanic func(cause error)) {
	rec := recover()
	if rec == nil {
		return
	}

	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec) //nolint:err113
	}

	onPanic(New(err))
}

// walk visits err and every error it wraps depth-first until visit returns false.
func walk(err error, visit func(error) bool) bool {
	for err != nil {
		if !visit(err) {
			return false
		}

		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range multi.Unwrap() {
				if !walk(inner, visit) {
					return false
				}
			}

			return true
		}

		err = errors.Unwrap(err)
	}

	return true
}
