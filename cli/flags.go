package cli

import (
	"github.com/gruntwork-io/csvfilter/internal/errors"
	"github.com/gruntwork-io/csvfilter/internal/filter"
	"github.com/gruntwork-io/csvfilter/internal/table"
	"github.com/gruntwork-io/csvfilter/options"
	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/csvfilter/pkg/log/formatters"
	"github.com/urfave/cli/v2"
)

const (
	FlagNameFilter    = "filter"
	FlagNameStrict    = "strict"
	FlagNameHash      = "hash"
	FlagNameDelimiter = "delimiter"

	FlagNameLogLevel  = "log-level"
	FlagNameLogFormat = "log-format"

	FlagNameTelemetryTraceExporter    = "telemetry-trace-exporter"
	FlagNameTelemetryMetricExporter   = "telemetry-metric-exporter"
	FlagNameTelemetryExporterEndpoint = "telemetry-exporter-endpoint"
	FlagNameTelemetryExporterInsecure = "telemetry-exporter-insecure"

	categoryFilter    = "Filter options:"
	categoryLogging   = "Logging options:"
	categoryTelemetry = "Telemetry options:"
)

// NewFlags returns the app flags. Parsed values are written to opts.
func NewFlags(opts *options.FilterOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:      FlagNameFilter,
			Aliases:   []string{"f"},
			Usage:     "Keep only rows matching `EXPR`, one of column=value, column/N or /N. Repeat to combine filters, a row must match all of them.",
			Category:  categoryFilter,
			KeepSpace: true,
		},
		&cli.BoolFlag{
			Name:        FlagNameStrict,
			Usage:       "Fail on filter expressions that match no filter form instead of ignoring them.",
			Category:    categoryFilter,
			Destination: &opts.Strict,
		},
		&cli.StringFlag{
			Name:     FlagNameHash,
			Usage:    "Hash `ALGORITHM` used by column/N filters: " + filter.AllHashAlgorithms.String() + ".",
			Category: categoryFilter,
			Value:    string(opts.HashAlgorithm),
			Action: func(_ *cli.Context, val string) error {
				alg, err := filter.ParseHashAlgorithm(val)
				if err != nil {
					return errors.NewErrorWithExitCode(err, errors.ExitCodeUsage)
				}

				opts.HashAlgorithm = alg

				return nil
			},
		},
		&cli.StringFlag{
			Name:     FlagNameDelimiter,
			Usage:    "Single `CHAR` separating fields in both input and output. Use \\t for tab.",
			Category: categoryFilter,
			Value:    string(opts.Delimiter),
			Action: func(_ *cli.Context, val string) error {
				delimiter, err := table.ParseDelimiter(val)
				if err != nil {
					return errors.NewErrorWithExitCode(err, errors.ExitCodeUsage)
				}

				opts.Delimiter = delimiter

				return nil
			},
		},
		&cli.StringFlag{
			Name:     FlagNameLogLevel,
			Usage:    "Sets the logging `LEVEL`: " + log.AllLevels.String() + ".",
			Category: categoryLogging,
			Value:    opts.LogLevel.String(),
		},
		&cli.StringFlag{
			Name:        FlagNameLogFormat,
			Usage:       "Sets the logging `FORMAT` and its options, e.g. pretty,no-color. Formats: " + formatters.AllFormatters().String() + ".",
			Category:    categoryLogging,
			Value:       opts.LogFormat,
			Destination: &opts.LogFormat,
		},
		&cli.StringFlag{
			Name:        FlagNameTelemetryTraceExporter,
			Usage:       "Trace `EXPORTER`: none, console, otlpHttp or otlpGrpc.",
			Category:    categoryTelemetry,
			Destination: &opts.Telemetry.TraceExporter,
		},
		&cli.StringFlag{
			Name:        FlagNameTelemetryMetricExporter,
			Usage:       "Metric `EXPORTER`: none, console, otlpHttp or otlpGrpc.",
			Category:    categoryTelemetry,
			Destination: &opts.Telemetry.MetricExporter,
		},
		&cli.StringFlag{
			Name:        FlagNameTelemetryExporterEndpoint,
			Usage:       "`HOST:PORT` of the OTLP collector.",
			Category:    categoryTelemetry,
			Destination: &opts.Telemetry.ExporterEndpoint,
		},
		&cli.BoolFlag{
			Name:        FlagNameTelemetryExporterInsecure,
			Usage:       "Disable TLS for the OTLP exporters.",
			Category:    categoryTelemetry,
			Destination: &opts.Telemetry.ExporterInsecure,
		},
	}
}
