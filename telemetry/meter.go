package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/gruntwork-io/csvfilter/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	durationMetricSuffix = "_duration"
	countMetricSuffix    = "_count"

	metricReaderInterval = 10 * time.Second
)

type Meter struct {
	otelmetric.Meter
	provider *sdkmetric.MeterProvider
	exporter sdkmetric.Exporter
}

// NewMeter creates and configures the metrics collection.
// It returns a nil Meter when metrics are disabled.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := NewMetricExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if exporter == nil { // no exporter
		return nil, nil
	}

	r, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(r),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricReaderInterval))),
	)

	otel.SetMeterProvider(provider)

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
		exporter: exporter,
	}, nil
}

// NewMetricExporter creates a new exporter based on the telemetry options.
func NewMetricExporter(ctx context.Context, writer io.Writer, opts *Options) (sdkmetric.Exporter, error) {
	switch exporterType(opts.MetricExporter) {
	case "", noneExporterType:
		return nil, nil
	case consoleExporterType:
		return stdoutmetric.New(stdoutmetric.WithWriter(writer))
	case otlpHTTPExporterType:
		var config []otlpmetrichttp.Option
		if opts.ExporterEndpoint != "" {
			config = append(config, otlpmetrichttp.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecure {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	case otlpGrpcExporterType:
		var config []otlpmetricgrpc.Option
		if opts.ExporterEndpoint != "" {
			config = append(config, otlpmetricgrpc.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecure {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, config...)
	}

	return nil, errors.New(&ErrorUnknownExporter{Kind: "metric", Name: opts.MetricExporter})
}

// Time records the execution time of fn in milliseconds.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.exporter == nil || meter.provider == nil {
		return fn(ctx)
	}

	histogram, err := meter.Int64Histogram(CleanMetricName(name+durationMetricSuffix), otelmetric.WithUnit("ms"))
	if err != nil {
		return fn(ctx)
	}

	startTime := time.Now()
	err = fn(ctx)

	histogram.Record(ctx, time.Since(startTime).Milliseconds(), otelmetric.WithAttributes(mapToAttributes(attrs)...))

	return err
}

// Count adds value to the counter with the given name.
func (meter *Meter) Count(ctx context.Context, name string, value int64, attrs map[string]any) {
	if meter == nil || meter.exporter == nil || meter.provider == nil {
		return
	}

	counter, err := meter.Int64Counter(CleanMetricName(name + countMetricSuffix))
	if err != nil {
		return
	}

	counter.Add(ctx, value, otelmetric.WithAttributes(mapToAttributes(attrs)...))
}
