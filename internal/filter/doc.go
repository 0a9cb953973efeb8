// Package filter provides a parser and evaluator for the row filter expressions passed with --filter.
//
// # Overview
//
// Each --filter expression is parsed once into a Predicate. The parsed predicates form an ordered
// Filters list that is evaluated against every input row: a row is kept only if every predicate
// keeps it. Evaluation stops at the first predicate that rejects the row.
//
// # Filter Syntax
//
// Expressions are matched against the following forms, in this order. The first form that
// matches wins.
//
// ## Column Equals
//
//	state=md                # Keep rows whose "state" column is exactly "md"
//	id=100/5                # Keep rows whose "id" column is exactly "100/5"
//
// The expression is split on the last '=' that leaves both the column and the value non-empty,
// so "a=b=c" compares column "a=b" with "c" while "a=b=" compares column "a" with "b=". Either
// side may contain '/'. The comparison is exact: case-sensitive, no trimming.
//
// ## Column Modulo
//
//	id/100                  # Keep roughly 1 in 100 distinct "id" values
//
// The expression is split on the last '/'. The column must be non-empty and must not contain '/'.
// The number is decimal digits with an optional leading '-', so "id/+7" is not a modulo form.
// A row is kept when the hash of its column value, modulo the given number, is zero. The hash is
// deterministic (see HashAlgorithm), so the same input always selects the same rows.
//
// ## Row Index Modulo
//
//	/100                    # Keep rows 0, 100, 200, ...
//
// Row indexes are zero-based positions among the data rows, the header is not counted.
//
// # Unrecognized Expressions
//
// An expression that matches none of the forms above is not an error: Parse returns a nil
// Predicate and the expression is dropped. A Parser created with WithStrict turns unrecognized
// expressions into UnrecognizedFilterError.
//
// A modulo form whose number is zero, negative or too large is always an InvalidModulusError.
//
// # Usage Examples
//
//	filters, dropped, err := filter.NewParser().ParseFilterQueries([]string{"state=md", "/10"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, row := range rows {
//	    keep, err := filters.IncludeRow(row, i)
//	    ...
//	}
package filter
