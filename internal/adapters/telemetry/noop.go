package telemetry

import (
	"context"

	"go.trai.ch/stylo/internal/core/ports"
)

// NoOpTracer discards every span. Tests and callers without a provider use it.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns ctx unchanged together with a span that records nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, discard
}

// NoOpSpan is the span returned by NoOpTracer.
type NoOpSpan struct{}

var discard ports.Span = NoOpSpan{}

func (NoOpSpan) End()                     {}
func (NoOpSpan) RecordError(error)        {}
func (NoOpSpan) SetAttribute(string, any) {}
