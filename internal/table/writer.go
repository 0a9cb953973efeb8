package table

import (
	"encoding/csv"
	"io"

	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// Writer writes a header row followed by data rows in the same format Reader reads.
type Writer struct {
	csv           *csv.Writer
	headerWritten bool
}

// NewWriter creates a Writer that joins fields with the given delimiter.
func NewWriter(w io.Writer, delimiter rune) *Writer {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	return &Writer{csv: writer}
}

// SetCRLF makes the writer end lines with "\r\n" instead of "\n".
// It must be called before the header is written.
func (writer *Writer) SetCRLF(crlf bool) {
	writer.csv.UseCRLF = crlf
}

// WriteHeader writes the header row. It must be called exactly once, before any record.
func (writer *Writer) WriteHeader(header []string) error {
	if writer.headerWritten {
		return errors.Errorf("header is already written")
	}

	if err := writer.csv.Write(header); err != nil {
		return errors.New(err)
	}

	writer.headerWritten = true

	return nil
}

// Write writes a single record.
func (writer *Writer) Write(record *Record) error {
	if !writer.headerWritten {
		return errors.Errorf("record on line %d written before the header", record.Line())
	}

	if err := writer.csv.Write(record.Values()); err != nil {
		return errors.New(err)
	}

	return nil
}

// Flush writes any buffered data to the underlying writer.
func (writer *Writer) Flush() error {
	writer.csv.Flush()

	if err := writer.csv.Error(); err != nil {
		return errors.New(err)
	}

	return nil
}
