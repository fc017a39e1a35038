// Package log wraps zap with a context-aware call surface. Loggers pick up
// the request correlation id injected by the HTTP middleware so every line
// emitted while serving a request can be tied back to it.
package log

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Int64  = zap.Int64
	Bool   = zap.Bool
	Time   = zap.Time
	Any    = zap.Any
	Err    = zap.Error
)

type correlationIDKey struct{}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type initOptions struct {
	level      zapcore.Level
	structured bool
}

type InitOption func(*initOptions)

func WithLevel(level string) InitOption {
	return func(o *initOptions) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

// WithConsoleOutput switches to the human readable encoder, for local runs.
func WithConsoleOutput() InitOption {
	return func(o *initOptions) {
		o.structured = false
	}
}

func Init(appName string, opts ...InitOption) {
	fOpts := &initOptions{level: zapcore.InfoLevel, structured: true}
	for _, opt := range opts {
		opt(fOpts)
	}

	cfg := zap.NewProductionConfig()
	if !fOpts.structured {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(fOpts.level)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}

	mu.Lock()
	logger = l.With(zap.String("app", appName))
	mu.Unlock()
}

// InitForTest silences all output; call it from TestMain.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	_ = get().Sync()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, zap.String("correlation-id", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	get().Panic(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	get().Debug(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	get().Info(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	get().Warn(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	get().Error(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	get().Fatal(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}
