package table

import (
	"fmt"

	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// MalformedRecordError is returned for a row that cannot be parsed, such as a row with a different
// number of fields than the header or a row with unbalanced quotes.
type MalformedRecordError struct {
	Err  error
	Line int
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record on line %d: %v", e.Line, e.Err)
}

func (e MalformedRecordError) Unwrap() error {
	return e.Err
}

// NewMalformedRecordError creates a new MalformedRecordError with a stack trace.
func NewMalformedRecordError(line int, err error) error {
	return errors.New(MalformedRecordError{Line: line, Err: err})
}

// InvalidDelimiterError is returned for a delimiter that cannot separate fields.
type InvalidDelimiterError struct {
	Value string
}

func (e InvalidDelimiterError) Error() string {
	return fmt.Sprintf("invalid delimiter %q: must be a single character other than a quote, carriage return or newline", e.Value)
}
