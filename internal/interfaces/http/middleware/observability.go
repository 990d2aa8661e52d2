package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
)

// Observability starts a server span for each request and records the
// request counter and latency histogram once the handler chain finishes.
// Metric labels use the route template, not the raw path, to keep
// cardinality bounded.
func Observability(tracer trace.Tracer, metrics *monitoring.Metrics) gin.HandlerFunc {
	propagator := propagation.TraceContext{}

	return func(c *gin.Context) {
		start := time.Now()

		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx,
			c.Request.Method+" "+c.FullPath(),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		duration := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = "not_found"
		}

		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), duration)

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.path", path),
			attribute.Int("http.status_code", c.Writer.Status()),
			attribute.String("http.client_ip", c.ClientIP()),
		)
	}
}
