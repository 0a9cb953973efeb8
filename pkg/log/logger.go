// Package log provides a leveled logger with structured logging support.
package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled logger handed around the application through the context.
// Output format and level are swapped at runtime with SetOptions once the command line is parsed.
type Logger interface {
	// SetOptions applies the given options to the logger and every logger derived from it.
	SetOptions(opts ...Option)

	// Level returns the minimum level of the messages the logger outputs.
	Level() Level

	// Formatter returns the formatter the logger renders entries with.
	Formatter() Formatter

	// WithField returns a derived logger that attaches key=value to every entry.
	WithField(key string, value any) Logger

	Debugf(format string, args ...any)
	Warnf(format string, args ...any)

	Trace(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// logger shares a single logrus.Logger between all loggers derived with WithField,
// so options set on any of them apply to the whole family.
type logger struct {
	entry     *logrus.Entry
	formatter *Formatter
}

// New returns a new Logger instance.
func New(opts ...Option) Logger {
	logger := &logger{
		entry:     logrus.NewEntry(logrus.New()),
		formatter: new(Formatter),
	}
	logger.SetOptions(opts...)

	return logger
}

func (logger *logger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

func (logger *logger) Level() Level {
	return FromLogrusLevel(logger.entry.Logger.GetLevel())
}

func (logger *logger) Formatter() Formatter {
	return *logger.formatter
}

func (logger *logger) WithField(key string, value any) Logger {
	derived := *logger
	derived.entry = logger.entry.WithField(key, value)

	return &derived
}

func (logger *logger) Debugf(format string, args ...any) {
	logger.output(DebugLevel, func() string { return fmt.Sprintf(format, args...) })
}

func (logger *logger) Warnf(format string, args ...any) {
	logger.output(WarnLevel, func() string { return fmt.Sprintf(format, args...) })
}

func (logger *logger) Trace(args ...any) {
	logger.output(TraceLevel, func() string { return fmt.Sprint(args...) })
}

func (logger *logger) Info(args ...any) {
	logger.output(InfoLevel, func() string { return fmt.Sprint(args...) })
}

func (logger *logger) Warn(args ...any) {
	logger.output(WarnLevel, func() string { return fmt.Sprint(args...) })
}

func (logger *logger) Error(args ...any) {
	logger.output(ErrorLevel, func() string { return fmt.Sprint(args...) })
}

// output renders the message only if the level is enabled.
func (logger *logger) output(level Level, message func() string) {
	logrusLevel := level.ToLogrusLevel()
	if !logger.entry.Logger.IsLevelEnabled(logrusLevel) {
		return
	}

	logger.entry.Log(logrusLevel, message())
}

func (logger *logger) setFormatter(formatter Formatter) {
	*logger.formatter = formatter
	logger.entry.Logger.SetFormatter(&fromLogrusFormatter{Formatter: formatter})
}
