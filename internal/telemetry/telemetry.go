// Package telemetry wires OpenTelemetry tracing and metrics for negspace.
// When disabled it hands out no-op providers so callers never branch.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Config controls telemetry setup.
type Config struct {
	Enabled  bool
	Endpoint string
	Protocol string // grpc | http
	Service  string
	Version  string
}

// Provider wires tracer/meter providers and exposes the instruments the
// rest of the program records against.
type Provider struct {
	Enabled bool
	tracer  trace.Tracer
	meter   metric.Meter

	mappingsCounter  metric.Int64Counter
	absencesPerMap   metric.Int64Histogram
	providerDuration metric.Float64Histogram

	shutdownTraceProvider func(context.Context) error
	shutdownMeterProvider func(context.Context) error
}

// NewProvider configures OTEL exporters + providers. When disabled, returns
// no-op providers.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cfg.Enabled {
		no := &Provider{
			Enabled: false,
			tracer:  tracenoop.NewTracerProvider().Tracer(""),
			meter:   noop.NewMeterProvider().Meter(""),
		}
		no.initInstruments()
		return no, nil
	}

	service := cfg.Service
	if service == "" {
		service = "negspace"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(service),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, err
	}

	var (
		traceProvider *sdktrace.TracerProvider
		meterProvider *sdkmetric.MeterProvider
	)

	switch strings.ToLower(cfg.Protocol) {
	case "grpc":
		traceExp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, err
		}
		metricExp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpoint(cfg.Endpoint), otlpmetricgrpc.WithInsecure())
		if err != nil {
			return nil, err
		}
		traceProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExp), sdktrace.WithResource(res))
		meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)), sdkmetric.WithResource(res))
	default: // http
		traceExp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
		if err != nil {
			return nil, err
		}
		metricExp, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpoint(cfg.Endpoint), otlpmetrichttp.WithInsecure())
		if err != nil {
			return nil, err
		}
		traceProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExp), sdktrace.WithResource(res))
		meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)), sdkmetric.WithResource(res))
	}

	p := &Provider{
		Enabled:               true,
		tracer:                traceProvider.Tracer("negspace"),
		meter:                 meterProvider.Meter("negspace"),
		shutdownTraceProvider: traceProvider.Shutdown,
		shutdownMeterProvider: meterProvider.Shutdown,
	}
	p.initInstruments()
	return p, nil
}

func (p *Provider) initInstruments() {
	p.mappingsCounter, _ = p.meter.Int64Counter("negspace.mappings",
		metric.WithDescription("Total mapping runs"))
	p.absencesPerMap, _ = p.meter.Int64Histogram("negspace.absences_per_mapping",
		metric.WithDescription("Absences detected per mapping run"))
	p.providerDuration, _ = p.meter.Float64Histogram("negspace.provider_duration_ms",
		metric.WithDescription("Upstream provider latency in milliseconds"))
}

// Tracer returns the configured tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// RecordMapping records one mapping run with its absence count and kernel
// compliance outcome.
func (p *Provider) RecordMapping(ctx context.Context, absences int, compliant bool) {
	attrs := metric.WithAttributes(attribute.Bool("kernel_compliant", compliant))
	p.mappingsCounter.Add(ctx, 1, attrs)
	p.absencesPerMap.Record(ctx, int64(absences), attrs)
}

// RecordProviderLatency records one upstream call's latency.
func (p *Provider) RecordProviderLatency(ctx context.Context, providerName string, ms float64) {
	p.providerDuration.Record(ctx, ms, metric.WithAttributes(attribute.String("provider", providerName)))
}

// Shutdown flushes exporters. Safe to call on a disabled provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.shutdownTraceProvider != nil {
		if err := p.shutdownTraceProvider(ctx); err != nil {
			return err
		}
	}
	if p.shutdownMeterProvider != nil {
		return p.shutdownMeterProvider(ctx)
	}
	return nil
}
