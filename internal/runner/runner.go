// Package runner streams an input table through a set of row filters.
package runner

import (
	"context"
	"io"
	"os"

	"github.com/gruntwork-io/csvfilter/internal/errors"
	"github.com/gruntwork-io/csvfilter/internal/filter"
	"github.com/gruntwork-io/csvfilter/internal/table"
	"github.com/gruntwork-io/csvfilter/options"
	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/csvfilter/telemetry"
)

const (
	metricRowsRead = "rows_read"
	metricRowsKept = "rows_kept"

	fieldFilter = "filter"
)

// Stats counts the data rows seen by Filter.
type Stats struct {
	RowsRead int
	RowsKept int
}

// Run parses the configured filters, then filters the table at opts.InputPath into opts.Writer.
// Filters are parsed before the input is opened, so a bad filter never produces output.
func Run(ctx context.Context, opts *options.FilterOptions) error {
	filters, err := parseFilters(ctx, opts)
	if err != nil {
		return err
	}

	opts.Logger.Debugf("Parsed filters %s", filters)

	file, err := os.Open(opts.InputPath)
	if err != nil {
		return errors.New(err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			opts.Logger.Warnf("Error closing %s: %v", opts.InputPath, closeErr)
		}
	}()

	return filter.TraceFilterEvaluate(ctx, opts.InputPath, filters, func(ctx context.Context) error {
		stats, err := Filter(filters, file, opts.Writer, opts.Delimiter)

		tlm := telemetry.TelemeterFromContext(ctx)
		attrs := map[string]any{filter.AttrInputPath: opts.InputPath}
		tlm.Count(ctx, metricRowsRead, int64(stats.RowsRead), attrs)
		tlm.Count(ctx, metricRowsKept, int64(stats.RowsKept), attrs)

		opts.Logger.WithField(log.FieldKeyPrefix, opts.InputPath).Debugf("Kept %d of %d rows", stats.RowsKept, stats.RowsRead)

		return err
	})
}

func parseFilters(ctx context.Context, opts *options.FilterOptions) (filter.Filters, error) {
	var filters filter.Filters

	err := filter.TraceFilterParse(ctx, opts.FilterQueries, opts.Strict, opts.HashAlgorithm, func(_ context.Context) error {
		parsed, dropped, err := opts.NewParser().ParseFilterQueries(opts.FilterQueries)
		if err != nil {
			return err
		}

		for _, query := range dropped {
			opts.Logger.WithField(fieldFilter, query).Warn("Ignoring unrecognized filter expression")
		}

		filters = parsed

		return nil
	})

	return filters, err
}

// Filter copies the header of input to output, followed by the data rows that pass every filter,
// in their original order. Output lines end the way the first input line does. Empty input gives
// empty output. Output is flushed on every return path, so rows kept before an error are still written.
func Filter(filters filter.Filters, input io.Reader, output io.Writer, delimiter rune) (stats Stats, err error) {
	reader := table.NewReader(input, delimiter)
	writer := table.NewWriter(output, delimiter)

	defer func() {
		if flushErr := writer.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
	}()

	header, err := reader.Header()
	if err != nil {
		return stats, err
	}

	if len(header) == 0 {
		return stats, nil
	}

	writer.SetCRLF(reader.CRLF())

	if err := writer.WriteHeader(header); err != nil {
		return stats, err
	}

	for record, err := range reader.Records() {
		if err != nil {
			return stats, err
		}

		rowIndex := stats.RowsRead
		stats.RowsRead++

		// every row shares the header, so a missing column is reported on the first row
		if rowIndex == 0 {
			if err := filters.CheckColumns(record, rowIndex); err != nil {
				return stats, err
			}
		}

		keep, err := filters.IncludeRow(record, rowIndex)
		if err != nil {
			return stats, err
		}

		if !keep {
			continue
		}

		if err := writer.Write(record); err != nil {
			return stats, err
		}

		stats.RowsKept++
	}

	return stats, nil
}
