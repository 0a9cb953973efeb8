package table

import (
	"encoding/csv"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// DefaultDelimiter separates fields when no delimiter is configured.
const DefaultDelimiter = ','

// Reader reads a header row followed by data rows.
type Reader struct {
	csv    *csv.Reader
	ending *lineEnding
	header *Header
	err    error
}

// NewReader creates a Reader that splits fields on the given delimiter.
func NewReader(r io.Reader, delimiter rune) *Reader {
	ending := &lineEnding{r: r}

	reader := csv.NewReader(ending)
	reader.Comma = delimiter
	// every row must have as many fields as the header
	reader.FieldsPerRecord = 0
	// a quote inside an unquoted field is kept as a literal character
	reader.LazyQuotes = true

	return &Reader{csv: reader, ending: ending}
}

// CRLF reports whether the first line of the input ended with "\r\n".
// It is meaningful once the header has been read.
func (reader *Reader) CRLF() bool {
	return reader.ending.crlf
}

// Header reads the header row on the first call and returns the column names.
// An empty input gives an empty header and no error.
func (reader *Reader) Header() ([]string, error) {
	if err := reader.readHeader(); err != nil {
		return nil, err
	}

	return reader.header.Names(), nil
}

// Records returns a single-pass sequence of the data rows, in file order.
// The sequence stops at the end of the input or after yielding the first error.
func (reader *Reader) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		if err := reader.readHeader(); err != nil {
			yield(nil, err)
			return
		}

		if reader.header.Len() == 0 {
			return
		}

		for {
			values, err := reader.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(nil, reader.wrapError(err))
				return
			}

			line, _ := reader.csv.FieldPos(0)

			if !yield(&Record{header: reader.header, values: values, line: line}, nil) {
				return
			}
		}
	}
}

func (reader *Reader) readHeader() error {
	if reader.header != nil || reader.err != nil {
		return reader.err
	}

	names, err := reader.csv.Read()

	switch {
	case errors.Is(err, io.EOF):
		reader.header = NewHeader(nil)
	case err != nil:
		reader.err = reader.wrapError(err)
	default:
		reader.header = NewHeader(names)
	}

	return reader.err
}

// lineEnding watches the bytes passing through it until the first '\n'
// and records whether it was preceded by '\r'.
type lineEnding struct {
	r       io.Reader
	prev    byte
	decided bool
	crlf    bool
}

func (ending *lineEnding) Read(p []byte) (int, error) {
	n, err := ending.r.Read(p)

	for i := 0; i < n && !ending.decided; i++ {
		if p[i] == '\n' {
			ending.decided = true
			ending.crlf = ending.prev == '\r'
		}

		ending.prev = p[i]
	}

	return n, err
}

func (reader *Reader) wrapError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return NewMalformedRecordError(parseErr.StartLine, parseErr.Err)
	}

	return errors.New(err)
}

// ParseDelimiter converts a flag value into a field delimiter. The value `\t` stands for a tab.
func ParseDelimiter(str string) (rune, error) {
	if str == `\t` {
		return '\t', nil
	}

	delimiter, size := utf8.DecodeRuneInString(str)
	if size == 0 || size != len(str) || !validDelimiter(delimiter) {
		return 0, errors.New(InvalidDelimiterError{Value: str})
	}

	return delimiter, nil
}

func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
