package filter

import (
	"encoding/json"

	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// Filters is an ordered list of predicates evaluated with intersection (AND) semantics.
// The order does not change which rows are kept, only how early evaluation of a row stops.
type Filters []Predicate

// ParseFilterQueries parses multiple filter strings and returns a Filters object.
//
// Expressions that match no filter form are returned in dropped, in the order given, and are left
// out of the result. In strict mode they are reported as errors instead. All parse errors are
// collected and returned together.
func (p *Parser) ParseFilterQueries(queries []string) (filters Filters, dropped []string, err error) {
	filters = make(Filters, 0, len(queries))

	var errs *errors.MultiError

	for _, query := range queries {
		predicate, err := p.Parse(query)
		if err != nil {
			errs = errs.Append(err)
			continue
		}

		if predicate == nil {
			dropped = append(dropped, query)
			continue
		}

		filters = append(filters, predicate)
	}

	return filters, dropped, errs.ErrorOrNil()
}

// ParseFilterQueries parses multiple filter strings with the default parser.
func ParseFilterQueries(queries []string) (Filters, []string, error) {
	return NewParser().ParseFilterQueries(queries)
}

// String returns a JSON array representation of all filter strings.
func (f Filters) String() string {
	filterStrings := make([]string, len(f))
	for i, predicate := range f {
		filterStrings[i] = predicate.String()
	}

	jsonBytes, err := json.Marshal(filterStrings)
	if err != nil {
		return "[]"
	}

	return string(jsonBytes)
}
