package formatters

import (
	"bytes"
	"fmt"

	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/go-commons/errors"
)

const (
	PrettyFormatterName = "pretty"

	defaultPrettyFormatterTimestampFormat = "15:04:05.000"
)

// PrettyFormatter implements log.Formatter
var _ log.Formatter = new(PrettyFormatter)

// PrettyFormatter writes human readable, optionally colored, lines.
type PrettyFormatter struct {
	*CommonFormatter

	colorScheme compiledColorScheme

	// Reuse for printing fields in key-value format
	keyValueFormatter *KeyValueFormatter
}

// NewPrettyFormatter returns a new PrettyFormatter instance with default values.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		CommonFormatter:   newCommonFormatter(PrettyFormatterName, defaultPrettyFormatterTimestampFormat, OptionColor, OptionTime, OptionLevel, OptionPrefix),
		colorScheme:       defaultColorScheme.Compile(),
		keyValueFormatter: NewKeyValueFormatter(),
	}
}

// Format implements log.Formatter
func (formatter *PrettyFormatter) Format(entry *log.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	var (
		timestamp = formatter.getTimestamp(entry.Time)
		level     = formatter.getLevel(entry.Level)
		prefix    = formatter.getPrefix(entry.Fields)
		message   = entry.Message
	)

	if timestamp != "" {
		timestamp += " "
	}

	if level != "" {
		level += " "
	}

	if prefix != "" {
		prefix = "[" + prefix + "] "
	}

	if formatter.enabled(OptionColor) {
		timestamp = formatter.colorScheme.ColorFunc(TimestampStyle)(timestamp)
		level = formatter.colorScheme.LevelColorFunc(entry.Level)(level)
		prefix = formatter.colorScheme.ColorFunc(PrefixStyle)(prefix)
	} else {
		message = log.RemoveAllASCISeq(message)
	}

	if _, err := fmt.Fprintf(buf, "%s%s%s%s", timestamp, level, prefix, message); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	for _, key := range entry.Fields.Keys(log.FieldKeyPrefix) {
		if err := formatter.keyValueFormatter.appendKeyValue(buf, key, entry.Fields[key], true); err != nil {
			return nil, err
		}
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return buf.Bytes(), nil
}
