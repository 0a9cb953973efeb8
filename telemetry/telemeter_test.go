package telemetry_test

import (
	"bytes"
	"context"
	goerrors "errors"
	"io"
	"testing"

	"github.com/gruntwork-io/csvfilter/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCollected = goerrors.New("collected")

func TestTelemeterFromContext_NoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tlm := telemetry.TelemeterFromContext(ctx)
	require.NotNil(t, tlm)

	called := false
	err := tlm.Collect(ctx, "filter_parse", map[string]any{"filter.count": 2}, func(context.Context) error {
		called = true
		return errCollected
	})

	assert.True(t, called)
	require.ErrorIs(t, err, errCollected)

	// counting without a meter is a no-op
	tlm.Count(ctx, "rows_read", 10, nil)
	require.NoError(t, tlm.Shutdown(ctx))
}

func TestTelemeterFromContext_Stored(t *testing.T) {
	t.Parallel()

	tlm := &telemetry.Telemeter{}
	ctx := telemetry.ContextWithTelemeter(context.Background(), tlm)

	assert.Same(t, tlm, telemetry.TelemeterFromContext(ctx))
}

func TestNewTelemeter_Disabled(t *testing.T) {
	t.Parallel()

	tlm, err := telemetry.NewTelemeter(context.Background(), "csvfilter", "test", io.Discard, &telemetry.Options{})
	require.NoError(t, err)
	assert.Nil(t, tlm.Tracer)
	assert.Nil(t, tlm.Meter)
}

func TestNewTelemeter_Console(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	buf := new(bytes.Buffer)

	tlm, err := telemetry.NewTelemeter(ctx, "csvfilter", "test", buf, &telemetry.Options{
		TraceExporter:  "console",
		MetricExporter: "console",
	})
	require.NoError(t, err)
	require.NotNil(t, tlm.Tracer)
	require.NotNil(t, tlm.Meter)

	err = tlm.Collect(ctx, "filter_evaluate", map[string]any{"filter.query": []string{"state=md"}}, func(ctx context.Context) error {
		tlm.Count(ctx, "rows_read", 3, nil)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, tlm.Shutdown(ctx))

	output := buf.String()
	assert.Contains(t, output, "filter_evaluate")
	assert.Contains(t, output, "filter_evaluate_duration")
	assert.Contains(t, output, "rows_read_count")
}

func TestNewTraceExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name        string
		exporter    string
		expectNil   bool
		expectError bool
	}{
		{name: "empty", exporter: "", expectNil: true},
		{name: "none", exporter: "none", expectNil: true},
		{name: "console", exporter: "console"},
		{name: "otlp http", exporter: "otlpHttp"},
		{name: "otlp grpc", exporter: "otlpGrpc"},
		{name: "unknown", exporter: "carrier-pigeon", expectNil: true, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := &telemetry.Options{TraceExporter: tt.exporter, ExporterEndpoint: "localhost:4318", ExporterInsecure: true}

			exporter, err := telemetry.NewTraceExporter(ctx, io.Discard, opts)
			if tt.expectError {
				var unknownErr *telemetry.ErrorUnknownExporter
				require.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, "trace", unknownErr.Kind)

				return
			}

			require.NoError(t, err)

			if tt.expectNil {
				assert.Nil(t, exporter)
				return
			}

			assert.NotNil(t, exporter)
		})
	}
}

func TestNewMetricExporter_Unknown(t *testing.T) {
	t.Parallel()

	_, err := telemetry.NewMetricExporter(context.Background(), io.Discard, &telemetry.Options{MetricExporter: "statsd"})

	var unknownErr *telemetry.ErrorUnknownExporter
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "metric", unknownErr.Kind)
	assert.Contains(t, err.Error(), "otlpGrpc")
}

func TestCleanMetricName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "filter_evaluate_duration", telemetry.CleanMetricName("filter evaluate--duration"))
	assert.Equal(t, "rows.read", telemetry.CleanMetricName("__rows.read__"))
}
