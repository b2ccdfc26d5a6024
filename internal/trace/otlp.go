// Package trace records rating changes as OpenTelemetry spans.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"starrating/internal/rating"
)

// SpanRatingChanged is the name of the span recorded for every render.
const SpanRatingChanged = "rating.changed"

// OTLPExporter exports rating spans to an OTLP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// Returns nil if endpoint not configured (disabled)
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "starrating"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return newExporter(provider), nil
}

func newExporter(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("starrating/rating"),
	}
}

// Recorder returns an observer recording one span per render of the control
// identified by id. A nil exporter returns an observer that does nothing.
func (e *OTLPExporter) Recorder(id string) rating.Observer {
	if e == nil {
		return func(*rating.Control) {}
	}
	return NewRecorder(e.tracer, id)
}

// NewRecorder returns an observer recording rating changes with tracer.
func NewRecorder(tracer oteltrace.Tracer, id string) rating.Observer {
	return func(c *rating.Control) {
		_, span := tracer.Start(context.Background(), SpanRatingChanged)
		span.SetAttributes(
			attribute.String("starrating.control.id", id),
			attribute.Int("starrating.selected", c.SelectedStars()),
			attribute.Int("starrating.total", c.TotalStars()),
			attribute.String("starrating.label", c.AccessibilityLabel()),
		)
		span.End()
	}
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
