package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return WithProvider(tp), sr
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestSession_RecordsEvents(t *testing.T) {
	tr, sr := recordingTracer(t)

	s := tr.StartSession(context.Background(), "Alabites Food Ordering App", 10)
	require.NotEmpty(t, s.ID)
	s.Slide(1, 10, "key")
	s.Enlarge(1)
	s.Drag(-80, "next")
	s.Shrink(2)
	s.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "showcase.session", span.Name())

	title, ok := attrValue(span.Attributes(), "project.title")
	require.True(t, ok)
	assert.Equal(t, "Alabites Food Ordering App", title.AsString())
	id, ok := attrValue(span.Attributes(), "session.id")
	require.True(t, ok)
	assert.Equal(t, s.ID, id.AsString())

	var names []string
	for _, e := range span.Events() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"slide", "enlarge", "drag", "shrink"}, names)
}

func TestSession_EndIsIdempotent(t *testing.T) {
	tr, sr := recordingTracer(t)
	s := tr.StartSession(context.Background(), "p", 0)
	s.End()
	s.End()
	s.Slide(0, 0, "key") // ignored after end
	assert.Len(t, sr.Ended(), 1)
	assert.Empty(t, sr.Ended()[0].Events())
}

func TestSession_NilIsInert(t *testing.T) {
	var s *Session
	s.Slide(1, 2, "dot")
	s.Enlarge(0)
	s.Drag(0, "none")
	s.End()
}

func TestDisabled(t *testing.T) {
	tr, err := New(context.Background(), "", "folio")
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	s := tr.StartSession(context.Background(), "p", 1)
	s.Slide(0, 1, "key")
	s.End()
	assert.NoError(t, tr.Shutdown(context.Background()))

	var nilTracer *Tracer
	assert.Nil(t, nilTracer.StartSession(context.Background(), "p", 1))
	assert.NoError(t, nilTracer.Shutdown(context.Background()))
}

func TestSessionIDsAreUnique(t *testing.T) {
	tr := Disabled()
	a := tr.StartSession(context.Background(), "a", 1)
	b := tr.StartSession(context.Background(), "a", 1)
	assert.NotEqual(t, a.ID, b.ID)
}
