package table

// Header holds the column names of a table and the position of every column.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader creates a Header from the column names in file order.
// If a name occurs more than once, lookups resolve to its last occurrence.
func NewHeader(names []string) *Header {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	return &Header{names: names, index: index}
}

// Names returns the column names in file order.
func (header *Header) Names() []string {
	return header.names
}

// Len returns the number of columns.
func (header *Header) Len() int {
	return len(header.names)
}

// Record is a single data row.
type Record struct {
	header *Header
	values []string
	line   int
}

// NewRecord creates a Record with the given values, in header order.
func NewRecord(header *Header, values []string) *Record {
	return &Record{header: header, values: values}
}

// Get returns the value of the given column and whether the header has that column.
func (record *Record) Get(column string) (string, bool) {
	i, ok := record.header.index[column]
	if !ok || i >= len(record.values) {
		return "", false
	}

	return record.values[i], true
}

// Values returns the raw values in header order.
func (record *Record) Values() []string {
	return record.values
}

// Line returns the input line the record starts on, or 0 for records not read from input.
func (record *Record) Line() int {
	return record.line
}
