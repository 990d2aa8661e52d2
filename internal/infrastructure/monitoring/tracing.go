package monitoring

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/turtacn/mfo-shield/internal/config"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// TracingManager manages OpenTelemetry tracing for the service.
type TracingManager struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
	logger   logger.Logger
}

// NewTracingManager creates the tracing manager. When tracing is disabled
// it returns a manager backed by the global no-op tracer so callers never
// need to branch on the tracing configuration.
func NewTracingManager(cfg *config.Config, log logger.Logger) (*TracingManager, error) {
	if !cfg.Tracing.Enabled {
		log.Info(context.Background(), "Tracing is disabled")
		return &TracingManager{
			tracer: otel.Tracer(constants.ServiceTracerName),
			logger: log,
		}, nil
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(cfg.Tracing.JaegerEndpoint),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.Tracing.ServiceName),
			attribute.String("environment", cfg.Tracing.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.Tracing.SamplingRate)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info(context.Background(), "Tracing initialized successfully",
		logger.String("endpoint", cfg.Tracing.JaegerEndpoint),
		logger.Float64("sample_rate", cfg.Tracing.SamplingRate),
	)

	return &TracingManager{
		tracer:   provider.Tracer(constants.ServiceTracerName),
		provider: provider,
		logger:   log,
	}, nil
}

// Tracer exposes the underlying tracer for middleware that manages its
// own span lifecycle.
func (tm *TracingManager) Tracer() trace.Tracer {
	return tm.tracer
}

// StartSpan starts a new span.
func (tm *TracingManager) StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tm.tracer.Start(ctx, spanName, opts...)
}

// StartSpanWithAttributes starts a new span carrying the given attributes.
func (tm *TracingManager) StartSpanWithAttributes(ctx context.Context, spanName string, attrs map[string]interface{}) (context.Context, trace.Span) {
	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for key, value := range attrs {
		attributes = append(attributes, convertToAttribute(key, value))
	}

	return tm.tracer.Start(ctx, spanName, trace.WithAttributes(attributes...))
}

// AddEvent adds an event to the current span.
func (tm *TracingManager) AddEvent(ctx context.Context, name string, attrs map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for key, value := range attrs {
		attributes = append(attributes, convertToAttribute(key, value))
	}

	span.AddEvent(name, trace.WithAttributes(attributes...))
}

// RecordError records an error on the current span and marks it failed.
func (tm *TracingManager) RecordError(ctx context.Context, err error, attrs map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for key, value := range attrs {
		attributes = append(attributes, convertToAttribute(key, value))
	}

	span.RecordError(err, trace.WithAttributes(attributes...))
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanStatus sets the status of the current span.
func (tm *TracingManager) SetSpanStatus(ctx context.Context, code codes.Code, description string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetStatus(code, description)
}

// SetSpanAttributes sets attributes on the current span.
func (tm *TracingManager) SetSpanAttributes(ctx context.Context, attrs map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	for key, value := range attrs {
		span.SetAttributes(convertToAttribute(key, value))
	}
}

// GetTraceID returns the current trace ID, or "" outside a valid span.
func (tm *TracingManager) GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// GetSpanID returns the current span ID, or "" outside a valid span.
func (tm *TracingManager) GetSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}

// InjectTraceContext injects the trace context into the carrier.
func (tm *TracingManager) InjectTraceContext(ctx context.Context, carrier propagation.TextMapCarrier) {
	otel.GetTextMapPropagator().Inject(ctx, carrier)
}

// ExtractTraceContext extracts the trace context from the carrier.
func (tm *TracingManager) ExtractTraceContext(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}

// Shutdown flushes and stops the tracer provider.
func (tm *TracingManager) Shutdown(ctx context.Context) error {
	if tm.provider == nil {
		return nil
	}

	if err := tm.provider.Shutdown(ctx); err != nil {
		tm.logger.Error(ctx, "Failed to shutdown tracing provider", err)
		return err
	}

	tm.logger.Info(ctx, "Tracing provider shutdown successfully")
	return nil
}

// convertToAttribute converts an interface{} value to an OpenTelemetry attribute.
func convertToAttribute(key string, value interface{}) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case []int:
		return attribute.IntSlice(key, v)
	case []int64:
		return attribute.Int64Slice(key, v)
	case []float64:
		return attribute.Float64Slice(key, v)
	case []bool:
		return attribute.BoolSlice(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}

// TraceOperation runs fn inside a span, recording any returned error.
func TraceOperation(ctx context.Context, tm *TracingManager, operationName string, fn func(context.Context) error, attrs map[string]interface{}) error {
	ctx, span := tm.StartSpanWithAttributes(ctx, operationName, attrs)
	defer span.End()

	err := fn(ctx)
	if err != nil {
		tm.RecordError(ctx, err, attrs)
		return err
	}

	tm.SetSpanStatus(ctx, codes.Ok, "operation completed successfully")
	return nil
}
