package formatters

import (
	"fmt"
	"strings"
	"time"

	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/go-commons/collections"
	"github.com/gruntwork-io/go-commons/errors"
)

const (
	OptionColor  = "color"
	OptionTime   = "time"
	OptionLevel  = "level"
	OptionPrefix = "prefix"
	OptionIndent = "indent"
)

var timestampFormatMap = map[string]string{
	"rfc3339":      time.RFC3339,
	"rfc3339-nano": time.RFC3339Nano,
	"date-time":    time.DateTime,
	"time-only":    time.TimeOnly,
	"kitchen":      time.Kitchen,
}

// CommonFormatter holds the option handling shared by all formatters.
type CommonFormatter struct {
	// Timestamp format to use for display when a full timestamp is printed.
	TimestampFormat string

	name             string
	options          map[string]any
	supportedOptions []string
}

func newCommonFormatter(name, timestampFormat string, supportedOptions ...string) *CommonFormatter {
	return &CommonFormatter{
		TimestampFormat:  timestampFormat,
		name:             name,
		options:          make(map[string]any),
		supportedOptions: supportedOptions,
	}
}

func (formatter *CommonFormatter) Name() string {
	return formatter.name
}

func (formatter *CommonFormatter) SupportedOption() []string {
	return formatter.supportedOptions
}

func (formatter *CommonFormatter) SetOption(name string, value any) error {
	if !collections.ListContainsElement(formatter.supportedOptions, name) {
		return errors.Errorf("invalid option %q for the format %q, supported options: %s", name, formatter.Name(), strings.Join(formatter.supportedOptions, ", "))
	}

	if name == OptionTime {
		if val, ok := value.(string); ok {
			layout, ok := timestampFormatMap[val]
			if !ok {
				return errors.Errorf("invalid time format %q, supported formats: %s", val, strings.Join(collections.Keys(timestampFormatMap), ", "))
			}

			value = layout
		}
	}

	formatter.options[name] = value

	return nil
}

// enabled reports whether a boolean option is on. Options that were never set are on.
func (formatter *CommonFormatter) enabled(name string) bool {
	if val, ok := formatter.options[name].(bool); ok {
		return val
	}

	return true
}

func (formatter *CommonFormatter) getTimestamp(t time.Time) string {
	switch val := formatter.options[OptionTime].(type) {
	case bool:
		if !val {
			return ""
		}
	case string:
		return t.Format(val)
	}

	if formatter.TimestampFormat == "" {
		return ""
	}

	return t.Format(formatter.TimestampFormat)
}

func (formatter *CommonFormatter) getLevel(level log.Level) string {
	switch val := formatter.options[OptionLevel].(type) {
	case bool:
		if !val {
			return ""
		}
	case string:
		if strings.EqualFold(val, "short") {
			return level.ShortName()
		}
	}

	return fmt.Sprintf("%-6s", strings.ToUpper(level.String()))
}

func (formatter *CommonFormatter) getPrefix(fields log.Fields) string {
	if !formatter.enabled(OptionPrefix) {
		return ""
	}

	if val, ok := fields[log.FieldKeyPrefix].(string); ok {
		return val
	}

	return ""
}
