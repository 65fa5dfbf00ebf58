package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/stylo/internal/adapters/telemetry"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/stylo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_Start(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerFrom(provider, "test")
	_, span := tracer.Start(t.Context(), "compile")
	span.SetAttribute("path", "/src/app.scss")
	span.SetAttribute("files", 3)
	span.SetAttribute("ok", false)
	span.RecordError(errors.New("unclosed block"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "compile", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "unclosed block", ended[0].Status().Description)
	assert.Contains(t, ended[0].Attributes(), attribute.String("path", "/src/app.scss"))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("files", 3))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("ok", false))
}

func TestOTelSpan_RecordErrorNil(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := telemetry.NewOTelTracerFrom(provider, "test").Start(t.Context(), "compile")
	span.RecordError(nil)
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
}

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(2)

	provider := telemetry.NewProvider(mockLogger)
	tracer := telemetry.NewOTelTracerFrom(provider, "test")

	_, ok := tracer.Start(t.Context(), "compile")
	ok.SetAttribute("path", "/src/app.scss")
	ok.End()

	_, failed := tracer.Start(t.Context(), "compile")
	failed.RecordError(errors.New("boom"))
	failed.End()

	require.Len(t, logged, 2)
	assert.True(t, strings.HasPrefix(logged[0], "compile took "))
	assert.Contains(t, logged[0], "path=/src/app.scss")
	assert.NotContains(t, logged[0], "(failed)")
	assert.True(t, strings.HasSuffix(logged[1], "(failed)"))
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := t.Context()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestOTelSpan_SetAttributeTypes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := telemetry.NewOTelTracerFrom(provider, "test").Start(t.Context(), "invalidate")
	span.SetAttribute("changed", []string{"/src/_a.scss"})
	span.SetAttribute("took", 2*time.Second)
	span.SetAttribute("ratio", 0.5)
	span.End()

	attrs := recorder.Ended()[0].Attributes()
	assert.Contains(t, attrs, attribute.StringSlice("changed", []string{"/src/_a.scss"}))
	assert.Contains(t, attrs, attribute.String("took", "2s"))
	assert.Contains(t, attrs, attribute.String("ratio", "0.5"))
}

func TestNewProvider_Resource(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	provider := telemetry.NewProvider(logger)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	recorder := tracetest.NewSpanRecorder()
	provider.RegisterSpanProcessor(recorder)

	_, span := telemetry.NewOTelTracerFrom(provider, "test").Start(t.Context(), "compile")
	span.End()

	res := recorder.Ended()[0].Resource()
	assert.Contains(t, res.Attributes(), attribute.String("service.name", telemetry.InstrumentationName))
}
