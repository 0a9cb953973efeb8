package filter

import (
	"strconv"

	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// Record is a single input row, looked up by column name.
type Record interface {
	// Get returns the value of the given column and whether the row has that column.
	Get(column string) (string, bool)
}

// IncludeRow reports whether the row at the given zero-based index passes every filter.
// Predicates are evaluated in order and evaluation stops at the first one that rejects the row.
// An empty Filters keeps every row.
func (f Filters) IncludeRow(record Record, rowIndex int) (bool, error) {
	for _, predicate := range f {
		keep, err := IncludeRow(predicate, record, rowIndex)
		if err != nil {
			return false, err
		}

		if !keep {
			return false, nil
		}
	}

	return true, nil
}

// IncludeRow evaluates a single predicate against a row.
func IncludeRow(predicate Predicate, record Record, rowIndex int) (bool, error) {
	switch node := predicate.(type) {
	case *ColumnEqualsFilter:
		value, err := lookup(record, node.Column, rowIndex)
		if err != nil {
			return false, err
		}

		return value == node.Value, nil
	case *ColumnModuloFilter:
		if node.Modulus < 1 {
			return false, NewInvalidModulusError(node.String(), strconv.Itoa(node.Modulus), nil)
		}

		value, err := lookup(record, node.Column, rowIndex)
		if err != nil {
			return false, err
		}

		return node.Hash.Sum64(value)%uint64(node.Modulus) == 0, nil
	case *RowIndexModuloFilter:
		if node.Modulus < 1 {
			return false, NewInvalidModulusError(node.String(), strconv.Itoa(node.Modulus), nil)
		}

		return rowIndex%node.Modulus == 0, nil
	default:
		return false, errors.Errorf("unknown predicate type %T", predicate)
	}
}

func lookup(record Record, column string, rowIndex int) (string, error) {
	value, ok := record.Get(column)
	if !ok {
		return "", NewMissingColumnError(column, rowIndex)
	}

	return value, nil
}

// CheckColumns returns a MissingColumnError for the first predicate that references a column
// the row does not have.
func (f Filters) CheckColumns(record Record, rowIndex int) error {
	for _, predicate := range f {
		var column string

		switch node := predicate.(type) {
		case *ColumnEqualsFilter:
			column = node.Column
		case *ColumnModuloFilter:
			column = node.Column
		default:
			continue
		}

		if _, err := lookup(record, column, rowIndex); err != nil {
			return err
		}
	}

	return nil
}
