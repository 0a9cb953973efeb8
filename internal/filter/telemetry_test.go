package filter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gruntwork-io/csvfilter/internal/filter"
	"github.com/gruntwork-io/csvfilter/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceFilterParse_NoTelemeter(t *testing.T) {
	t.Parallel()

	called := false
	err := filter.TraceFilterParse(context.Background(), []string{"state=md"}, false, filter.HashFNV1a, func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestTraceFilterEvaluate_Console(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	ctx := context.Background()

	tlm, err := telemetry.NewTelemeter(ctx, "csvfilter", "test", buf, &telemetry.Options{TraceExporter: "console"})
	require.NoError(t, err)

	ctx = telemetry.ContextWithTelemeter(ctx, tlm)

	filters := filter.Filters{&filter.RowIndexModuloFilter{Modulus: 3}}

	err = filter.TraceFilterEvaluate(ctx, "people.csv", filters, func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, tlm.Shutdown(ctx))

	output := buf.String()
	assert.Contains(t, output, filter.TelemetryOpFilterEvaluate)
	assert.Contains(t, output, "people.csv")
	assert.Contains(t, output, filter.AttrFilterCount)
}
