// Package formatters implements the log output formats selectable with --log-format.
package formatters

import (
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/go-commons/collections"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/mattn/go-isatty"
)

const (
	optionSeparator = ","
	valueSeparator  = ":"
	negativePrefix  = "no-"
)

// DefaultFormat is the format used when --log-format is not set.
const DefaultFormat = PrettyFormatterName

func AllFormatters() log.Formatters {
	return log.Formatters{
		NewPrettyFormatter(),
		NewKeyValueFormatter(),
		NewJSONFormatter(),
	}
}

// ParseFormat takes a string and returns a Formatter instance with defined options.
//
// The string is a comma separated list of a format name and options, e.g. `pretty,no-color,time:rfc3339`.
// An option without a value is turned on, an option with the `no-` prefix is turned off.
func ParseFormat(str string) (log.Formatter, error) {
	var (
		formatter     log.Formatter
		allFormatters = AllFormatters()
		opts          = make(map[string]any)
		optNames      []string
	)

	formatters := make(map[string]log.Formatter, len(allFormatters))
	for _, f := range allFormatters {
		formatters[f.Name()] = f
	}

	for _, name := range strings.Split(str, optionSeparator) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		if f, ok := formatters[name]; ok {
			formatter = f
			continue
		}

		var value any = true

		if key, val, ok := strings.Cut(name, valueSeparator); ok {
			name = key
			value = val
		} else if strings.HasPrefix(name, negativePrefix) {
			name = strings.TrimPrefix(name, negativePrefix)
			value = false
		}

		if _, ok := opts[name]; !ok {
			optNames = append(optNames, name)
		}

		opts[name] = value
	}

	if formatter == nil {
		return nil, errors.Errorf("invalid format %q, supported formats: %s", str, allFormatters)
	}

	for _, name := range optNames {
		if err := formatter.SetOption(name, opts[name]); err != nil {
			return nil, err
		}
	}

	return formatter, nil
}

// NewFormatter parses the format string and disables colors when the output is not a terminal.
func NewFormatter(str string, output io.Writer) (log.Formatter, error) {
	if str == "" {
		str = DefaultFormat
	}

	formatter, err := ParseFormat(str)
	if err != nil {
		return nil, err
	}

	if !IsTerminal(output) && collections.ListContainsElement(formatter.SupportedOption(), OptionColor) {
		if err := formatter.SetOption(OptionColor, false); err != nil {
			return nil, err
		}
	}

	return formatter, nil
}

// NewDefaultFormatter returns the default pretty formatter, colored only when the output is a terminal.
func NewDefaultFormatter(output io.Writer) log.Formatter {
	formatter := NewPrettyFormatter()
	formatter.options[OptionColor] = IsTerminal(output)

	return formatter
}

// IsTerminal reports whether the writer is a terminal.
func IsTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
