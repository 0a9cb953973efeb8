package formatters

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/go-commons/errors"
)

const (
	KeyValueFormatterName = "key-value"

	defaultKeyValueFormatterTimestampFormat = time.RFC3339
)

// KeyValueFormatter implements log.Formatter
var _ log.Formatter = new(KeyValueFormatter)

// KeyValueFormatter writes logfmt style `key=value` lines.
type KeyValueFormatter struct {
	*CommonFormatter

	// Can be set to the override the default quoting character " with something else. For example: ', or `.
	QuoteCharacter string
}

// NewKeyValueFormatter returns a new KeyValueFormatter instance with default values.
func NewKeyValueFormatter() *KeyValueFormatter {
	return &KeyValueFormatter{
		CommonFormatter: newCommonFormatter(KeyValueFormatterName, defaultKeyValueFormatterTimestampFormat, OptionTime, OptionLevel, OptionPrefix),
		QuoteCharacter:  `"`,
	}
}

// Format implements log.Formatter
func (formatter *KeyValueFormatter) Format(entry *log.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	appendSpace := false

	if timestamp := formatter.getTimestamp(entry.Time); timestamp != "" {
		if err := formatter.appendKeyValue(buf, log.FieldKeyTime, timestamp, appendSpace); err != nil {
			return nil, err
		}

		appendSpace = true
	}

	if formatter.enabled(OptionLevel) {
		if err := formatter.appendKeyValue(buf, log.FieldKeyLevel, entry.Level.String(), appendSpace); err != nil {
			return nil, err
		}

		appendSpace = true
	}

	if prefix := formatter.getPrefix(entry.Fields); prefix != "" {
		if err := formatter.appendKeyValue(buf, log.FieldKeyPrefix, prefix, appendSpace); err != nil {
			return nil, err
		}

		appendSpace = true
	}

	if err := formatter.appendKeyValue(buf, log.FieldKeyMsg, log.RemoveAllASCISeq(entry.Message), appendSpace); err != nil {
		return nil, err
	}

	for _, key := range entry.Fields.Keys(log.FieldKeyPrefix) {
		if err := formatter.appendKeyValue(buf, key, entry.Fields[key], true); err != nil {
			return nil, err
		}
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return buf.Bytes(), nil
}

func (formatter *KeyValueFormatter) appendKeyValue(buf *bytes.Buffer, key string, value any, appendSpace bool) error {
	keyFmt := "%s="
	if appendSpace {
		keyFmt = " " + keyFmt
	}

	if _, err := fmt.Fprintf(buf, keyFmt, key); err != nil {
		return errors.WithStackTrace(err)
	}

	return formatter.appendValue(buf, value)
}

func (formatter *KeyValueFormatter) appendValue(buf *bytes.Buffer, value any) error {
	var str string

	switch value := value.(type) {
	case string:
		str = value
	case error:
		str = value.Error()
	case fmt.Stringer:
		str = value.String()
	default:
		if _, err := fmt.Fprint(buf, value); err != nil {
			return errors.WithStackTrace(err)
		}

		return nil
	}

	if formatter.needsQuoting(str) {
		str = formatter.QuoteCharacter + str + formatter.QuoteCharacter
	}

	if _, err := buf.WriteString(str); err != nil {
		return errors.WithStackTrace(err)
	}

	return nil
}

func (formatter *KeyValueFormatter) needsQuoting(text string) bool {
	if len(text) == 0 {
		return true
	}

	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == '_' || ch == '/' || ch == ':') {
			return true
		}
	}

	return false
}
