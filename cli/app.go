// Package cli implements the csvfilter command line interface.
package cli

import (
	"context"

	"github.com/gruntwork-io/csvfilter/internal/errors"
	"github.com/gruntwork-io/csvfilter/internal/runner"
	"github.com/gruntwork-io/csvfilter/options"
	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/csvfilter/telemetry"
	"github.com/gruntwork-io/go-commons/version"
	"github.com/urfave/cli/v2"
)

const (
	AppName = "csvfilter"

	// devVersion is reported when the binary is built without a version.
	devVersion = "dev"
)

// App is the csvfilter CLI app.
type App struct {
	*cli.App
}

// NewApp creates the csvfilter CLI App.
func NewApp(opts *options.FilterOptions) *App {
	app := &cli.App{
		Name:      AppName,
		Usage:     "Filters the rows of a CSV file.",
		UsageText: AppName + " [options] FILE",
		Description: `Reads the CSV file FILE, keeps the header and the rows that match every --filter
and writes them to standard output in the same format.

Filter expressions:
   column=value   keeps rows whose column equals value exactly
   column/N       keeps rows whose hashed column value is divisible by N
   /N             keeps every Nth row, starting with the first one

Expressions that match none of these forms are ignored unless --strict is set.`,
		Version:                   appVersion(),
		Writer:                    opts.Writer,
		ErrWriter:                 opts.ErrWriter,
		Flags:                     NewFlags(opts),
		HideHelpCommand:           true,
		DisableSliceFlagSeparator: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return errors.NewErrorWithExitCode(errors.New(err), errors.ExitCodeUsage)
		},
		// errors are reported and mapped to exit codes by the caller
		ExitErrHandler: func(*cli.Context, error) {},
		Before:         beforeAction(opts),
		Action:         action(opts),
	}

	return &App{App: app}
}

// RunContext runs the app with the given arguments. Flags may follow the input file.
func (app *App) RunContext(ctx context.Context, arguments []string) error {
	return app.App.RunContext(ctx, reorderArgs(app.Flags, arguments))
}

func appVersion() string {
	if v := version.GetVersion(); v != "" {
		return v
	}

	return devVersion
}

func beforeAction(opts *options.FilterOptions) cli.BeforeFunc {
	return func(cliCtx *cli.Context) error {
		level, err := log.ParseLevel(cliCtx.String(FlagNameLogLevel))
		if err != nil {
			return errors.NewErrorWithExitCode(err, errors.ExitCodeUsage)
		}

		opts.LogLevel = level

		if err := opts.ConfigureLogger(); err != nil {
			return errors.NewErrorWithExitCode(err, errors.ExitCodeUsage)
		}

		return nil
	}
}

func action(opts *options.FilterOptions) cli.ActionFunc {
	return func(cliCtx *cli.Context) (err error) {
		if cliCtx.NArg() != 1 {
			return errors.NewErrorWithExitCode(
				errors.Errorf("expected exactly one input FILE, got %d arguments, see --help", cliCtx.NArg()),
				errors.ExitCodeUsage,
			)
		}

		opts.InputPath = cliCtx.Args().First()
		opts.FilterQueries = cliCtx.StringSlice(FlagNameFilter)

		tlm, err := telemetry.NewTelemeter(cliCtx.Context, cliCtx.App.Name, cliCtx.App.Version, opts.ErrWriter, opts.Telemetry)
		if err != nil {
			var unknownErr *telemetry.ErrorUnknownExporter
			if errors.As(err, &unknownErr) {
				return errors.NewErrorWithExitCode(err, errors.ExitCodeUsage)
			}

			return err
		}

		defer func() {
			if shutdownErr := tlm.Shutdown(cliCtx.Context); shutdownErr != nil && err == nil {
				err = shutdownErr
			}
		}()

		ctx := telemetry.ContextWithTelemeter(cliCtx.Context, tlm)
		ctx = log.ContextWithLogger(ctx, opts.Logger)

		return runner.Run(ctx, opts)
	}
}
