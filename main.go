package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/csvfilter/cli"
	"github.com/gruntwork-io/csvfilter/internal/errors"
	"github.com/gruntwork-io/csvfilter/options"
	"github.com/gruntwork-io/csvfilter/pkg/log"
)

// The main entrypoint for csvfilter
func main() {
	opts := options.NewFilterOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx := setupContext(opts)
	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(errors.ExitCode(err))
	}
}

func setupContext(opts *options.FilterOptions) context.Context {
	ctx := context.Background()
	return log.ContextWithLogger(ctx, opts.Logger)
}
