package telemetry

import (
	"context"
	"io"

	"github.com/gruntwork-io/csvfilter/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	noneExporterType     exporterType = "none"
	consoleExporterType  exporterType = "console"
	otlpHTTPExporterType exporterType = "otlpHttp"
	otlpGrpcExporterType exporterType = "otlpGrpc"
)

type exporterType string

// AllExporterTypes lists the accepted values for the trace and metric exporter options.
var AllExporterTypes = []string{
	string(noneExporterType),
	string(consoleExporterType),
	string(otlpHTTPExporterType),
	string(otlpGrpcExporterType),
}

type Tracer struct {
	trace.Tracer
	provider     *sdktrace.TracerProvider
	spanExporter sdktrace.SpanExporter
}

// NewTracer creates and configures the traces collection.
// It returns a nil Tracer when tracing is disabled.
func NewTracer(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Tracer, error) {
	spanExporter, err := NewTraceExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if spanExporter == nil { // no exporter
		return nil, nil
	}

	r, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(r),
	)

	otel.SetTracerProvider(provider)

	return &Tracer{
		Tracer:       provider.Tracer(appName),
		provider:     provider,
		spanExporter: spanExporter,
	}, nil
}

// NewTraceExporter creates a new exporter based on the telemetry options.
func NewTraceExporter(ctx context.Context, writer io.Writer, opts *Options) (sdktrace.SpanExporter, error) {
	switch exporterType(opts.TraceExporter) {
	case "", noneExporterType:
		return nil, nil
	case consoleExporterType:
		return stdouttrace.New(stdouttrace.WithWriter(writer))
	case otlpHTTPExporterType:
		var config []otlptracehttp.Option
		if opts.ExporterEndpoint != "" {
			config = append(config, otlptracehttp.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecure {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpGrpcExporterType:
		var config []otlptracegrpc.Option
		if opts.ExporterEndpoint != "" {
			config = append(config, otlptracegrpc.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecure {
			config = append(config, otlptracegrpc.WithInsecure())
		}

		return otlptracegrpc.New(ctx, config...)
	}

	return nil, errors.New(&ErrorUnknownExporter{Kind: "trace", Name: opts.TraceExporter})
}

// Trace collects traces for method execution.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tracer == nil || tracer.spanExporter == nil || tracer.provider == nil { // invoke function without tracing
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, name) // nolint:spancheck
	defer span.End()

	span.SetAttributes(mapToAttributes(attrs)...)

	if err := fn(ctx); err != nil {
		// record error in span
		span.RecordError(err)
		return err
	}

	return nil
}

// newResource describes the application in exported spans and metrics.
func newResource(appName, appVersion string) (*resource.Resource, error) {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(appName),
			semconv.ServiceVersion(appVersion),
		),
	)
	if err != nil {
		return nil, errors.New(err)
	}

	return r, nil
}
