package telemetry

import (
	"context"
	"fmt"
	"log"

	"ChordDHT/internal/config"
	"ChordDHT/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// InitTracer wires the process-global OTel tracer provider for a chord
// node, tagging every span with the service name and the node's ring
// identifier so lookup paths can be followed across nodes in the
// backend. Returns the provider's shutdown func; with tracing disabled
// it returns a no-op.
func InitTracer(cfg config.TelemetryConfig, serviceName string, nodeId domain.ID) func(context.Context) error {
	if !cfg.Tracing.Enabled {
		log.Println("Tracing disabled")
		return func(context.Context) error { return nil }
	}

	attrs := append(
		[]attribute.KeyValue{
			semconv.ServiceNameKey.String(serviceName),
		},
		IdAttributes("dht.node.id", nodeId)...,
	)
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(attrs...),
	)
	if err != nil {
		log.Fatalf("failed to create resource: %v", err)
	}

	exp, err := newExporter(cfg)
	if err != nil {
		log.Fatalf("failed to initialize %s exporter: %v", cfg.Tracing.Exporter, err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, // W3C traceparent/tracestate
			propagation.Baggage{},
		),
	)

	return tp.Shutdown
}

// newExporter builds the span exporter named by the config: stdout for
// local debugging, jaeger for a collector endpoint, otlp for a gRPC
// OTLP endpoint.
func newExporter(cfg config.TelemetryConfig) (sdktrace.SpanExporter, error) {
	switch cfg.Tracing.Exporter {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "jaeger":
		return jaeger.New(
			jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Tracing.Endpoint)),
		)
	case "otlp":
		return otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithEndpoint(cfg.Tracing.Endpoint),
		)
	default:
		return nil, fmt.Errorf("unsupported exporter: %s", cfg.Tracing.Exporter)
	}
}
