package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

type ctxKey struct{}

// Initialize sets up the global logger with the given log level.
// Optional key/value pairs are attached to every entry (e.g. "version", buildVersion).
func Initialize(level string, fields ...any) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = built.Sugar().With(fields...)
	return nil
}

// WithRequestID stores the request ID so later log lines can carry it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the request ID stored by WithRequestID.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// FromContext returns the global logger annotated with the request ID, if any.
// The context only has to carry values; it may already be canceled.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if id, ok := RequestID(ctx); ok {
		return Log.With("request_id", id)
	}
	return Log
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
