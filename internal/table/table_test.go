package table_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gruntwork-io/csvfilter/internal/errors"
	"github.com/gruntwork-io/csvfilter/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRead = errors.New("read failed")

// readAll collects the values of every record and the first error.
func readAll(reader *table.Reader) ([][]string, error) {
	var rows [][]string

	for record, err := range reader.Records() {
		if err != nil {
			return rows, err
		}

		rows = append(rows, record.Values())
	}

	return rows, nil
}

func TestReader(t *testing.T) {
	t.Parallel()

	input := "id,state,city\n1,md,Baltimore\n2,va,\"Falls Church, City\"\n3,md,\"say \"\"hi\"\"\"\n"
	reader := table.NewReader(strings.NewReader(input), ',')

	header, err := reader.Header()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "state", "city"}, header)

	rows, err := readAll(reader)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "md", "Baltimore"},
		{"2", "va", "Falls Church, City"},
		{"3", "md", `say "hi"`},
	}, rows)
}

func TestReader_RecordLookup(t *testing.T) {
	t.Parallel()

	reader := table.NewReader(strings.NewReader("id,state\n7,md \n"), ',')

	for record, err := range reader.Records() {
		require.NoError(t, err)

		value, ok := record.Get("state")
		assert.True(t, ok)
		assert.Equal(t, "md ", value)

		_, ok = record.Get("zip")
		assert.False(t, ok)

		_, ok = record.Get("State")
		assert.False(t, ok)

		assert.Equal(t, 2, record.Line())
	}
}

func TestReader_Empty(t *testing.T) {
	t.Parallel()

	reader := table.NewReader(strings.NewReader(""), ',')

	header, err := reader.Header()
	require.NoError(t, err)
	assert.Empty(t, header)

	rows, err := readAll(reader)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReader_HeaderOnly(t *testing.T) {
	t.Parallel()

	reader := table.NewReader(strings.NewReader("id,state\n"), ',')

	rows, err := readAll(reader)
	require.NoError(t, err)
	assert.Empty(t, rows)

	header, err := reader.Header()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "state"}, header)
}

func TestReader_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		expectedLine int
		expectedErr  error
		expectedRows int
	}{
		{name: "too many fields", input: "a,b\n1,2\n3,4,5\n", expectedLine: 3, expectedErr: csv.ErrFieldCount, expectedRows: 1},
		{name: "too few fields", input: "a,b\n1\n", expectedLine: 2, expectedErr: csv.ErrFieldCount},
		{name: "too few fields after quoted newline", input: "a,b\n\"x\ny\",1\n2\n", expectedLine: 4, expectedErr: csv.ErrFieldCount, expectedRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, err := readAll(table.NewReader(strings.NewReader(tt.input), ','))
			assert.Len(t, rows, tt.expectedRows)

			var malformedErr table.MalformedRecordError
			require.ErrorAs(t, err, &malformedErr)
			assert.Equal(t, tt.expectedLine, malformedErr.Line)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestReader_HeaderReadError(t *testing.T) {
	t.Parallel()

	reader := table.NewReader(iotest.ErrReader(errRead), ',')

	_, err := reader.Header()
	require.ErrorIs(t, err, errRead)

	// the error is sticky
	_, err = readAll(reader)
	require.ErrorIs(t, err, errRead)
}

func TestReader_LazyQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{name: "quote inside unquoted field", input: "id,note\n1,a\"b\n", expected: [][]string{{"1", `a"b`}}},
		{name: "trailing quote", input: "id,note\n1,6\"\n", expected: [][]string{{"1", `6"`}}},
		{name: "escaped quote in quoted field", input: "id,note\n1,\"say \"\"hi\"\"\"\n", expected: [][]string{{"1", `say "hi"`}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, err := readAll(table.NewReader(strings.NewReader(tt.input), ','))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestReader_CRLF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lf", input: "id,state\n1,md\n", expected: false},
		{name: "crlf", input: "id,state\r\n1,md\r\n", expected: true},
		{name: "first line decides", input: "id,state\r\n1,md\n", expected: true},
		{name: "no line ending", input: "id,state", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// one byte per read, so the line ending is split across reads
			reader := table.NewReader(iotest.OneByteReader(strings.NewReader(tt.input)), ',')

			_, err := reader.Header()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reader.CRLF())
		})
	}
}

func TestReader_Delimiter(t *testing.T) {
	t.Parallel()

	reader := table.NewReader(strings.NewReader("id\tstate\n1\tmd,va\n"), '\t')

	rows, err := readAll(reader)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "md,va"}}, rows)
}

func TestReader_StopEarly(t *testing.T) {
	t.Parallel()

	reader := table.NewReader(strings.NewReader("id\n1\n2\n3\n"), ',')

	var seen []string

	for record, err := range reader.Records() {
		require.NoError(t, err)

		seen = append(seen, record.Values()[0])
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"1", "2"}, seen)
}

func TestWriter(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	writer := table.NewWriter(buf, ',')
	header := table.NewHeader([]string{"id", "city"})

	require.NoError(t, writer.WriteHeader(header.Names()))
	require.NoError(t, writer.Write(table.NewRecord(header, []string{"1", "Falls Church, City"})))
	require.NoError(t, writer.Write(table.NewRecord(header, []string{"2", `say "hi"`})))
	require.NoError(t, writer.Flush())

	assert.Equal(t, "id,city\n1,\"Falls Church, City\"\n2,\"say \"\"hi\"\"\"\n", buf.String())
}

func TestWriter_CRLF(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	writer := table.NewWriter(buf, ',')
	writer.SetCRLF(true)

	header := table.NewHeader([]string{"id", "state"})

	require.NoError(t, writer.WriteHeader(header.Names()))
	require.NoError(t, writer.Write(table.NewRecord(header, []string{"1", "md"})))
	require.NoError(t, writer.Flush())

	assert.Equal(t, "id,state\r\n1,md\r\n", buf.String())
}

func TestWriter_Order(t *testing.T) {
	t.Parallel()

	writer := table.NewWriter(new(bytes.Buffer), ',')
	header := table.NewHeader([]string{"id"})

	require.Error(t, writer.Write(table.NewRecord(header, []string{"1"})))
	require.NoError(t, writer.WriteHeader(header.Names()))
	require.Error(t, writer.WriteHeader(header.Names()))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"lf":   "id;note\n1;\"a;b\"\n2;plain\n",
		"crlf": "id;note\r\n1;\"a;b\"\r\n2;plain\r\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reader := table.NewReader(strings.NewReader(input), ';')
			buf := new(bytes.Buffer)
			writer := table.NewWriter(buf, ';')

			header, err := reader.Header()
			require.NoError(t, err)

			writer.SetCRLF(reader.CRLF())
			require.NoError(t, writer.WriteHeader(header))

			for record, err := range reader.Records() {
				require.NoError(t, err)
				require.NoError(t, writer.Write(record))
			}

			require.NoError(t, writer.Flush())
			assert.Equal(t, input, buf.String())
		})
	}
}

func TestHeader_DuplicateColumns(t *testing.T) {
	t.Parallel()

	header := table.NewHeader([]string{"id", "id"})
	record := table.NewRecord(header, []string{"first", "second"})

	value, ok := record.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "second", value)
	assert.Equal(t, []string{"first", "second"}, record.Values())
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input       string
		expected    rune
		expectError bool
	}{
		{input: ",", expected: ','},
		{input: ";", expected: ';'},
		{input: "|", expected: '|'},
		{input: `\t`, expected: '\t'},
		{input: "\t", expected: '\t'},
		{input: "§", expected: '§'},
		{input: "", expectError: true},
		{input: ",,", expectError: true},
		{input: `"`, expectError: true},
		{input: "\n", expectError: true},
		{input: "\r", expectError: true},
		{input: "\xff", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			delimiter, err := table.ParseDelimiter(tt.input)
			if tt.expectError {
				var delimiterErr table.InvalidDelimiterError
				require.ErrorAs(t, err, &delimiterErr)
				assert.True(t, errors.ContainsStackTrace(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, delimiter)
		})
	}
}
