// Package telemetry records showcase sessions as OpenTelemetry spans.
//
// Export is enabled only when an OTLP endpoint is configured; otherwise every
// call goes to a no-op tracer and costs nothing.
package telemetry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "folio/showcase"

// Tracer starts session spans.
type Tracer struct {
	provider *sdktrace.TracerProvider // nil when disabled or injected
	tracer   oteltrace.Tracer
}

// New returns an exporting tracer when endpoint is set, and a no-op tracer
// otherwise.
func New(ctx context.Context, endpoint, serviceName string) (*Tracer, error) {
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "folio"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}, nil
}

// Disabled returns a tracer that records nothing.
func Disabled() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// WithProvider wraps an existing provider. Used by tests with an in-memory
// span recorder.
func WithProvider(tp oteltrace.TracerProvider) *Tracer {
	return &Tracer{tracer: tp.Tracer(instrumentationName)}
}

// Enabled reports whether spans are exported.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// Shutdown flushes and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}

// StartSession opens the span for one modal session.
func (t *Tracer) StartSession(ctx context.Context, title string, images int) *Session {
	if t == nil {
		return nil
	}
	id := uuid.NewString()
	_, span := t.tracer.Start(ctx, "showcase.session",
		oteltrace.WithAttributes(
			attribute.String("project.title", title),
			attribute.Int("project.images", images),
			attribute.String("session.id", id),
		),
	)
	return &Session{ID: id, span: span}
}

// Session is an open modal session span. A nil Session ignores all calls.
type Session struct {
	ID    string
	span  oteltrace.Span
	ended bool
}

// Slide records an index change.
func (s *Session) Slide(index, total int, via string) {
	s.event("slide",
		attribute.Int("slide.index", index),
		attribute.Int("slide.total", total),
		attribute.String("slide.via", via),
	)
}

// Enlarge records entering the full-screen viewer.
func (s *Session) Enlarge(index int) {
	s.event("enlarge", attribute.Int("slide.index", index))
}

// Shrink records leaving the full-screen viewer.
func (s *Session) Shrink(index int) {
	s.event("shrink", attribute.Int("slide.index", index))
}

// Drag records a released drag and what it did.
func (s *Session) Drag(offset int, outcome string) {
	s.event("drag",
		attribute.Int("drag.offset_px", offset),
		attribute.String("drag.outcome", outcome),
	)
}

// End closes the span. Further calls are ignored.
func (s *Session) End() {
	if s == nil || s.ended {
		return
	}
	s.ended = true
	s.span.End()
}

func (s *Session) event(name string, attrs ...attribute.KeyValue) {
	if s == nil || s.ended {
		return
	}
	s.span.AddEvent(name, oteltrace.WithAttributes(attrs...))
}
