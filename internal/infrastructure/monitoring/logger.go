// Package monitoring provides the observability backends of the service:
// the zap-based production logger, Prometheus metrics, and OpenTelemetry
// tracing.
package monitoring

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/turtacn/mfo-shield/internal/config"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

type zapLogger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
}

// NewZapLogger builds the production logger from the log configuration.
// The returned logger keeps an atomic level so SetLevel takes effect on
// live output, which is what configuration hot reload relies on.
func NewZapLogger(cfg *config.LogConfig) (logger.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	level := zap.NewAtomicLevelAt(toZapLevel(constants.LogLevel(cfg.Level)))

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	return &zapLogger{zl: zl, level: level}, nil
}

func (l *zapLogger) Debug(ctx context.Context, message string, fields ...logger.Field) {
	l.zl.Debug(message, l.convertFields(ctx, fields)...)
}

func (l *zapLogger) Info(ctx context.Context, message string, fields ...logger.Field) {
	l.zl.Info(message, l.convertFields(ctx, fields)...)
}

func (l *zapLogger) Warn(ctx context.Context, message string, fields ...logger.Field) {
	l.zl.Warn(message, l.convertFields(ctx, fields)...)
}

func (l *zapLogger) Error(ctx context.Context, message string, err error, fields ...logger.Field) {
	zapFields := l.convertFields(ctx, fields)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	l.zl.Error(message, zapFields...)
}

func (l *zapLogger) Fatal(ctx context.Context, message string, err error, fields ...logger.Field) {
	zapFields := l.convertFields(ctx, fields)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	l.zl.Fatal(message, zapFields...)
}

func (l *zapLogger) WithFields(fields ...logger.Field) logger.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return &zapLogger{zl: l.zl.With(zapFields...), level: l.level}
}

func (l *zapLogger) WithComponent(component string) logger.Logger {
	return &zapLogger{zl: l.zl.With(zap.String("component", component)), level: l.level}
}

func (l *zapLogger) SetLevel(level constants.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

func (l *zapLogger) GetLevel() constants.LogLevel {
	switch l.level.Level() {
	case zapcore.DebugLevel:
		return constants.LogLevelDebug
	case zapcore.InfoLevel:
		return constants.LogLevelInfo
	case zapcore.WarnLevel:
		return constants.LogLevelWarn
	case zapcore.ErrorLevel:
		return constants.LogLevelError
	case zapcore.FatalLevel:
		return constants.LogLevelFatal
	default:
		return constants.LogLevelInfo
	}
}

// convertFields enriches the zap fields with trace and request identity
// pulled from the context before appending the caller-provided fields.
func (l *zapLogger) convertFields(ctx context.Context, fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields)+5)

	if ctx != nil {
		span := trace.SpanFromContext(ctx)
		if span.SpanContext().IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}
		if requestID, ok := ctx.Value(constants.ContextKeyRequestID).(string); ok && requestID != "" {
			zapFields = append(zapFields, zap.String("request_id", requestID))
		}
		if subjectID, ok := ctx.Value(constants.ContextKeySubjectID).(string); ok && subjectID != "" {
			zapFields = append(zapFields, zap.String("subject_id", subjectID))
		}
		if jobID, ok := ctx.Value(constants.ContextKeyJobID).(string); ok && jobID != "" {
			zapFields = append(zapFields, zap.String("job_id", jobID))
		}
	}

	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}

func toZapLevel(level constants.LogLevel) zapcore.Level {
	switch level {
	case constants.LogLevelDebug:
		return zapcore.DebugLevel
	case constants.LogLevelInfo:
		return zapcore.InfoLevel
	case constants.LogLevelWarn:
		return zapcore.WarnLevel
	case constants.LogLevelError:
		return zapcore.ErrorLevel
	case constants.LogLevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
