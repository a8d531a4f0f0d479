package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by this service.
const TracerName = "resumen-backend"

// GetTracer returns the tracer for creating spans.
// It is resolved from the global provider on every call so a provider
// installed by Init (or a test) is always honoured.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "summary.generate")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Init installs an SDK tracer provider and the W3C trace context propagator
// as the process globals. Spans are sampled in-process so every request gets
// a real trace ID for X-Trace-Id correlation; register exporters through opts.
//
// The returned function flushes and stops the provider.
func Init(version string, opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	res := resource.NewSchemaless(
		attribute.String("service.name", TracerName),
		attribute.String("service.version", version),
	)

	opts = append([]sdktrace.TracerProviderOption{sdktrace.WithResource(res)}, opts...)
	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown
}
