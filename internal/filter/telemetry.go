package filter

import (
	"context"

	"github.com/gruntwork-io/csvfilter/telemetry"
)

// Telemetry operation names for filter operations.
const (
	TelemetryOpFilterParse    = "filter_parse"
	TelemetryOpFilterEvaluate = "filter_evaluate"
)

// Telemetry attribute keys for filter operations.
const (
	AttrFilterQuery  = "filter.query"
	AttrFilterCount  = "filter.count"
	AttrFilterStrict = "filter.strict"
	AttrFilterHash   = "filter.hash"
	AttrInputPath    = "input.path"
)

// TraceFilterParse wraps parsing of the given filter expressions with telemetry.
// The underlying Telemeter.Collect handles unconfigured telemetry gracefully.
func TraceFilterParse(ctx context.Context, queries []string, strict bool, hash HashAlgorithm, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterParse, map[string]any{
		AttrFilterQuery:  queries,
		AttrFilterCount:  len(queries),
		AttrFilterStrict: strict,
		AttrFilterHash:   string(hash),
	}, fn)
}

// TraceFilterEvaluate wraps evaluation of the filters against an input file with telemetry.
func TraceFilterEvaluate(ctx context.Context, inputPath string, filters Filters, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterEvaluate, map[string]any{
		AttrInputPath:   inputPath,
		AttrFilterQuery: filters.String(),
		AttrFilterCount: len(filters),
	}, fn)
}
