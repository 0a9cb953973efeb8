package formatters

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/go-commons/errors"
)

const (
	JSONFormatterName = "json"

	defaultJSONFormatterTimestampFormat = time.RFC3339
)

// JSONFormatter implements log.Formatter
var _ log.Formatter = new(JSONFormatter)

// JSONFormatter writes one JSON object per line.
type JSONFormatter struct {
	*CommonFormatter
}

// NewJSONFormatter returns a new JSONFormatter instance with default values.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		CommonFormatter: newCommonFormatter(JSONFormatterName, defaultJSONFormatterTimestampFormat, OptionTime, OptionIndent),
	}
}

// Format implements log.Formatter
func (formatter *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	fields := make(log.Fields, len(entry.Fields)+3)

	for k, v := range entry.Fields {
		switch v := v.(type) {
		case error:
			// Otherwise errors are ignored by `encoding/json`
			fields[k] = v.Error()
		default:
			fields[k] = v
		}
	}

	if timestamp := formatter.getTimestamp(entry.Time); timestamp != "" {
		fields[log.FieldKeyTime] = timestamp
	}

	fields[log.FieldKeyMsg] = log.RemoveAllASCISeq(entry.Message)
	fields[log.FieldKeyLevel] = entry.Level.String()

	encoder := json.NewEncoder(buf)

	// indent is off unless requested
	if val, ok := formatter.options[OptionIndent].(bool); ok && val {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(fields); err != nil {
		return nil, errors.Errorf("failed to marshal fields to JSON, %w", err)
	}

	return buf.Bytes(), nil
}
