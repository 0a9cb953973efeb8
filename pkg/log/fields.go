package log

import "sort"

const (
	FieldKeyPrefix = "prefix"
	FieldKeyMsg    = "msg"
	FieldKeyLevel  = "level"
	FieldKeyTime   = "time"
)

// Fields holds the data attached to an entry with WithField.
type Fields map[string]any

// Keys returns the sorted field keys, except for removeKeys.
func (fields Fields) Keys(removeKeys ...string) []string {
	var keys []string

	for key := range fields {
		var skip bool

		for _, removeKey := range removeKeys {
			if key == removeKey {
				skip = true
				break
			}
		}

		if !skip {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}
