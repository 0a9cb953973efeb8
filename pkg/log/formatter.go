package log

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter is used to implement a custom Formatter.
type Formatter interface {
	// Format takes an `Entry`. It exposes all the fields, including the default ones.
	Format(entry *Entry) ([]byte, error)

	// Name returns the formatter name.
	Name() string

	// SetOption sets the given option value.
	SetOption(name string, value any) error

	// SupportedOption returns the names of the options the formatter accepts.
	SupportedOption() []string
}

// Formatters is a list of formatters.
type Formatters []Formatter

func (formatters Formatters) Names() []string {
	strs := make([]string, len(formatters))

	for i, formatter := range formatters {
		strs[i] = formatter.Name()
	}

	return strs
}

func (formatters Formatters) String() string {
	return strings.Join(formatters.Names(), ", ")
}

// Entry is the final logging entry.
type Entry struct {
	*logrus.Entry
	Level  Level
	Fields Fields
}

// fromLogrusFormatter converts call from logrus.Formatter interface to our log.Formatter interface.
type fromLogrusFormatter struct {
	Formatter
}

func (f *fromLogrusFormatter) Format(parent *logrus.Entry) ([]byte, error) {
	entry := &Entry{
		Entry:  parent,
		Level:  FromLogrusLevel(parent.Level),
		Fields: Fields(parent.Data),
	}

	return f.Formatter.Format(entry)
}
