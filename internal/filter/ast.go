package filter

import "strconv"

// Predicate is the interface that all parsed filter expressions implement.
type Predicate interface {
	// predicateNode is a marker method to distinguish predicate nodes.
	predicateNode()
	// String returns the expression the predicate was parsed from, in canonical form.
	String() string
}

// ColumnModuloFilter keeps a row if the hash of its value in Column, modulo Modulus, is zero (e.g., "id/100").
type ColumnModuloFilter struct {
	Column  string
	Hash    HashAlgorithm
	Modulus int
}

func (f *ColumnModuloFilter) predicateNode() {}
func (f *ColumnModuloFilter) String() string  { return f.Column + "/" + strconv.Itoa(f.Modulus) }

// ColumnEqualsFilter keeps a row if its value in Column is exactly Value (e.g., "state=md").
type ColumnEqualsFilter struct {
	Column string
	Value  string
}

func (f *ColumnEqualsFilter) predicateNode() {}
func (f *ColumnEqualsFilter) String() string  { return f.Column + "=" + f.Value }

// RowIndexModuloFilter keeps a row if its zero-based index, modulo Modulus, is zero (e.g., "/100").
type RowIndexModuloFilter struct {
	Modulus int
}

func (f *RowIndexModuloFilter) predicateNode() {}
func (f *RowIndexModuloFilter) String() string  { return "/" + strconv.Itoa(f.Modulus) }
