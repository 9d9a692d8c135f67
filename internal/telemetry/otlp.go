// Package telemetry exports picker sessions as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	tracerName         = "tuikit/picker"
	defaultServiceName = "tuikit"
)

// Options configures the OTLP exporter.
type Options struct {
	Endpoint    string // host:port; empty disables export
	ServiceName string
	Insecure    bool
}

// Exporter records picker sessions on an OTel tracer provider.
// A nil *Exporter is valid and records nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an exporter that ships spans over OTLP/HTTP.
// Returns nil if no endpoint is configured (disabled).
func NewOTLPExporter(ctx context.Context, opts Options) (*Exporter, error) {
	if opts.Endpoint == "" {
		return nil, nil
	}

	httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewExporter wraps an existing tracer provider.
func NewExporter(provider *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}
}

// Shutdown flushes and closes the exporter
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
