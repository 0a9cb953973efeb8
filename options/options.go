// Package options provides a set of options that configure the behavior of the csvfilter program.
package options

import (
	"io"
	"os"

	"github.com/gruntwork-io/csvfilter/internal/filter"
	"github.com/gruntwork-io/csvfilter/internal/table"
	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/csvfilter/pkg/log/formatters"
	"github.com/gruntwork-io/csvfilter/telemetry"
)

const (
	defaultLogLevel = log.DefaultLevel
)

// FilterOptions represents options that configure the behavior of the csvfilter program.
type FilterOptions struct {
	// Writer receives the filtered table.
	Writer io.Writer
	// ErrWriter receives log output and console telemetry.
	ErrWriter io.Writer
	// Logger is the logger used for all diagnostics.
	Logger log.Logger
	// Telemetry configures the trace and metric exporters.
	Telemetry *telemetry.Options
	// InputPath is the path of the table to filter.
	InputPath string
	// LogFormat is the value of --log-format, e.g. `pretty,no-color`.
	LogFormat string
	// HashAlgorithm is used by column modulo filters.
	HashAlgorithm filter.HashAlgorithm
	// FilterQueries are the raw --filter expressions, in the order given.
	FilterQueries []string
	// LogLevel is the minimum level of the messages that are logged.
	LogLevel log.Level
	// Delimiter separates fields in both the input and the output.
	Delimiter rune
	// Strict turns unrecognized filter expressions into errors.
	Strict bool
}

// NewFilterOptions returns FilterOptions with default values writing to the standard streams.
func NewFilterOptions() *FilterOptions {
	return NewFilterOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewFilterOptionsWithWriters returns FilterOptions with default values writing to the given writers.
func NewFilterOptionsWithWriters(stdout, stderr io.Writer) *FilterOptions {
	logFormatter := formatters.NewDefaultFormatter(stderr)

	return &FilterOptions{
		Writer:        stdout,
		ErrWriter:     stderr,
		LogLevel:      defaultLogLevel,
		LogFormat:     formatters.DefaultFormat,
		Logger:        log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel), log.WithFormatter(logFormatter)),
		Telemetry:     &telemetry.Options{},
		HashAlgorithm: filter.DefaultHashAlgorithm,
		Delimiter:     table.DefaultDelimiter,
		FilterQueries: []string{},
	}
}

// ConfigureLogger applies LogLevel and LogFormat to the logger.
func (opts *FilterOptions) ConfigureLogger() error {
	formatter, err := formatters.NewFormatter(opts.LogFormat, opts.ErrWriter)
	if err != nil {
		return err
	}

	opts.Logger.SetOptions(log.WithLevel(opts.LogLevel), log.WithFormatter(formatter))

	return nil
}

// NewParser returns a filter parser configured by the options.
func (opts *FilterOptions) NewParser() *filter.Parser {
	return filter.NewParser(filter.WithStrict(opts.Strict), filter.WithHashAlgorithm(opts.HashAlgorithm))
}
