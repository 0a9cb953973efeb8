package cli

import (
	"testing"

	"github.com/gruntwork-io/csvfilter/options"
	"github.com/stretchr/testify/assert"
)

func TestReorderArgs(t *testing.T) {
	t.Parallel()

	flags := NewFlags(options.NewFilterOptions())

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "program only",
			args:     []string{"csvfilter"},
			expected: []string{"csvfilter"},
		},
		{
			name:     "flags first",
			args:     []string{"csvfilter", "-f", "/3", "people.csv"},
			expected: []string{"csvfilter", "-f", "/3", "--", "people.csv"},
		},
		{
			name:     "flags after the file",
			args:     []string{"csvfilter", "people.csv", "--filter", "state=md", "-f", "/3"},
			expected: []string{"csvfilter", "--filter", "state=md", "-f", "/3", "--", "people.csv"},
		},
		{
			name:     "bool flag does not take the file",
			args:     []string{"csvfilter", "--strict", "people.csv"},
			expected: []string{"csvfilter", "--strict", "--", "people.csv"},
		},
		{
			name:     "value with equals sign",
			args:     []string{"csvfilter", "people.csv", "--filter=state=md"},
			expected: []string{"csvfilter", "--filter=state=md", "--", "people.csv"},
		},
		{
			name:     "value starting with a dash",
			args:     []string{"csvfilter", "people.csv", "-f", "-x=1"},
			expected: []string{"csvfilter", "-f", "-x=1", "--", "people.csv"},
		},
		{
			name:     "terminator keeps dashed file names",
			args:     []string{"csvfilter", "-f", "/2", "--", "-people.csv"},
			expected: []string{"csvfilter", "-f", "/2", "--", "-people.csv"},
		},
		{
			name:     "help flag",
			args:     []string{"csvfilter", "--help"},
			expected: []string{"csvfilter", "--help"},
		},
		{
			name:     "missing flag value",
			args:     []string{"csvfilter", "people.csv", "-f"},
			expected: []string{"csvfilter", "people.csv", "-f"},
		},
		{
			name:     "several positional arguments",
			args:     []string{"csvfilter", "a.csv", "--hash", "xxhash", "b.csv"},
			expected: []string{"csvfilter", "--hash", "xxhash", "--", "a.csv", "b.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, reorderArgs(flags, tt.args))
		})
	}
}
