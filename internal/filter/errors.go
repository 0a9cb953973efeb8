package filter

import (
	"fmt"

	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// InvalidModulusError is returned when a modulo expression has a number that is not a positive integer.
type InvalidModulusError struct {
	Cause error
	Query string
	Value string
}

func (e InvalidModulusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid filter %q: modulus %q is out of range: %v", e.Query, e.Value, e.Cause)
	}

	return fmt.Sprintf("invalid filter %q: modulus must be a positive integer, got %s", e.Query, e.Value)
}

func (e InvalidModulusError) Unwrap() error {
	return e.Cause
}

// NewInvalidModulusError creates a new InvalidModulusError with a stack trace.
func NewInvalidModulusError(query, value string, cause error) error {
	return errors.New(InvalidModulusError{Query: query, Value: value, Cause: cause})
}

// UnrecognizedFilterError is returned in strict mode for an expression that matches no filter form.
type UnrecognizedFilterError struct {
	Query string
}

func (e UnrecognizedFilterError) Error() string {
	return fmt.Sprintf("unrecognized filter %q: expected column=value, column/N or /N", e.Query)
}

// NewUnrecognizedFilterError creates a new UnrecognizedFilterError with a stack trace.
func NewUnrecognizedFilterError(query string) error {
	return errors.New(UnrecognizedFilterError{Query: query})
}

// MissingColumnError is returned when a predicate references a column the row does not have.
type MissingColumnError struct {
	Column string
	Row    int
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in row %d", e.Column, e.Row)
}

// NewMissingColumnError creates a new MissingColumnError with a stack trace.
func NewMissingColumnError(column string, row int) error {
	return errors.New(MissingColumnError{Column: column, Row: row})
}

// UnknownHashAlgorithmError is returned for a hash algorithm name that is not supported.
type UnknownHashAlgorithmError struct {
	Name string
}

func (e UnknownHashAlgorithmError) Error() string {
	return fmt.Sprintf("unknown hash algorithm %q, supported algorithms: %s", e.Name, AllHashAlgorithms)
}
