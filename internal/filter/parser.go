package filter

import (
	"strconv"
	"strings"
)

const (
	equalsSeparator = "="
	moduloSeparator = "/"
)

// Parser turns filter expressions into predicates.
type Parser struct {
	hash   HashAlgorithm
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithHashAlgorithm sets the hash algorithm used by parsed ColumnModuloFilter predicates.
func WithHashAlgorithm(alg HashAlgorithm) Option {
	return func(p *Parser) {
		p.hash = alg
	}
}

// WithStrict makes the parser reject expressions that match no filter form.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a new Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{hash: DefaultHashAlgorithm}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses a single filter expression with the default parser.
// It returns a nil Predicate and a nil error if the expression matches no filter form.
func Parse(query string) (Predicate, error) {
	return NewParser().Parse(query)
}

// Parse parses a single filter expression.
//
// The forms are tried in a fixed order: column=value, then column/N, then /N. An expression that
// matches none of them gives a nil Predicate, or an UnrecognizedFilterError in strict mode.
func (p *Parser) Parse(query string) (Predicate, error) {
	if column, value, ok := cutEquals(query); ok {
		return &ColumnEqualsFilter{Column: column, Value: value}, nil
	}

	if idx := strings.LastIndex(query, moduloSeparator); idx >= 0 {
		column, number := query[:idx], query[idx+1:]

		if isInteger(number) && !strings.Contains(column, moduloSeparator) {
			modulus, err := parseModulus(query, number)
			if err != nil {
				return nil, err
			}

			if column == "" {
				return &RowIndexModuloFilter{Modulus: modulus}, nil
			}

			return &ColumnModuloFilter{Column: column, Modulus: modulus, Hash: p.hash}, nil
		}
	}

	if p.strict {
		return nil, NewUnrecognizedFilterError(query)
	}

	return nil, nil
}

// parseModulus converts an already validated integer literal into a modulus of at least 1.
func parseModulus(query, number string) (int, error) {
	modulus, err := strconv.Atoi(number)
	if err != nil {
		return 0, NewInvalidModulusError(query, number, err)
	}

	if modulus < 1 {
		return 0, NewInvalidModulusError(query, number, nil)
	}

	return modulus, nil
}

// cutEquals splits query on the last '=' that leaves both sides non-empty,
// so "a=b=c" gives column "a=b" and "a=b=" gives value "b=".
func cutEquals(query string) (column, value string, ok bool) {
	for idx := strings.LastIndex(query, equalsSeparator); idx > 0; idx = strings.LastIndex(query[:idx], equalsSeparator) {
		if idx < len(query)-1 {
			return query[:idx], query[idx+1:], true
		}
	}

	return "", "", false
}

// isInteger reports whether str is a decimal integer literal, optionally negative.
func isInteger(str string) bool {
	str = strings.TrimPrefix(str, "-")

	if str == "" {
		return false
	}

	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
