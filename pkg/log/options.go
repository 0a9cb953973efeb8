package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Logger.
type Option func(logger *logger)

// WithLevel sets the minimum level of the messages the logger outputs.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.entry.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the writer the logger outputs to.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.entry.Logger.SetOutput(output)
	}
}

// WithFormatter sets the formatter of the logger.
func WithFormatter(formatter Formatter) Option {
	return func(logger *logger) {
		logger.setFormatter(formatter)
	}
}

func WithHooks(hooks ...logrus.Hook) Option {
	return func(logger *logger) {
		for _, hook := range hooks {
			logger.entry.Logger.AddHook(hook)
		}
	}
}
