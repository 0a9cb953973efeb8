package options_test

import (
	"bytes"
	"testing"

	"github.com/gruntwork-io/csvfilter/internal/filter"
	"github.com/gruntwork-io/csvfilter/internal/table"
	"github.com/gruntwork-io/csvfilter/options"
	"github.com/gruntwork-io/csvfilter/pkg/log"
	"github.com/gruntwork-io/csvfilter/pkg/log/formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterOptions(t *testing.T) {
	t.Parallel()

	opts := options.NewFilterOptionsWithWriters(new(bytes.Buffer), new(bytes.Buffer))

	assert.Equal(t, log.InfoLevel, opts.LogLevel)
	assert.Equal(t, log.InfoLevel, opts.Logger.Level())
	assert.Equal(t, formatters.DefaultFormat, opts.LogFormat)
	assert.Equal(t, formatters.PrettyFormatterName, opts.Logger.Formatter().Name())
	assert.Equal(t, filter.DefaultHashAlgorithm, opts.HashAlgorithm)
	assert.Equal(t, rune(table.DefaultDelimiter), opts.Delimiter)
	assert.False(t, opts.Strict)
	assert.Empty(t, opts.FilterQueries)
	require.NotNil(t, opts.Telemetry)
}

func TestConfigureLogger(t *testing.T) {
	t.Parallel()

	stderr := new(bytes.Buffer)

	opts := options.NewFilterOptionsWithWriters(new(bytes.Buffer), stderr)
	opts.LogFormat = "json,no-time"
	opts.LogLevel = log.WarnLevel

	require.NoError(t, opts.ConfigureLogger())

	opts.Logger.Info("not shown")
	opts.Logger.WithField("filter", "???").Warn("ignored")

	assert.JSONEq(t, `{"level":"warn","msg":"ignored","filter":"???"}`, stderr.String())
	assert.Equal(t, log.WarnLevel, opts.Logger.Level())
}

func TestConfigureLogger_InvalidFormat(t *testing.T) {
	t.Parallel()

	opts := options.NewFilterOptionsWithWriters(new(bytes.Buffer), new(bytes.Buffer))
	opts.LogFormat = "yaml"

	require.Error(t, opts.ConfigureLogger())
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	opts := options.NewFilterOptionsWithWriters(new(bytes.Buffer), new(bytes.Buffer))
	opts.HashAlgorithm = filter.HashXXHash

	predicate, err := opts.NewParser().Parse("user/4")
	require.NoError(t, err)
	assert.Equal(t, &filter.ColumnModuloFilter{Column: "user", Modulus: 4, Hash: filter.HashXXHash}, predicate)

	predicate, err = opts.NewParser().Parse("???")
	require.NoError(t, err)
	assert.Nil(t, predicate)

	opts.Strict = true

	_, err = opts.NewParser().Parse("???")

	var unrecognizedErr filter.UnrecognizedFilterError
	require.ErrorAs(t, err, &unrecognizedErr)
}
