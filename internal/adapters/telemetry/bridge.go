package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/stylo/internal/build"
	"go.trai.ch/stylo/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by logging finished spans at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	for _, attr := range s.Attributes() {
		fmt.Fprintf(&msg, " %s=%s", attr.Key, attr.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		msg.WriteString(" (failed)")
	}

	b.logger.Debug(msg.String())
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider returns a tracer provider that reports every span through logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", InstrumentationName),
		attribute.String("service.version", build.Version),
	)
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
}
