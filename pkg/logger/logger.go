// Package logger constructs the zap loggers used across the library.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	level    zapcore.Level
	encoding string
	outputs  []string
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum enabled level. Unknown names keep info.
func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

// WithEncoding selects "json" or "console" output.
func WithEncoding(encoding string) Option {
	return func(o *options) {
		if encoding == "json" || encoding == "console" {
			o.encoding = encoding
		}
	}
}

// WithOutputs replaces the default stderr sink.
func WithOutputs(paths ...string) Option {
	return func(o *options) {
		if len(paths) > 0 {
			o.outputs = paths
		}
	}
}

// New returns a sugared logger tagged with the service name.
// If the configuration cannot be built a no-op logger is returned.
func New(service string, opts ...Option) *zap.SugaredLogger {
	o := options{level: zapcore.InfoLevel, encoding: "json", outputs: []string{"stderr"}}
	for _, opt := range opts {
		opt(&o)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(o.level)
	config.Encoding = o.encoding
	config.OutputPaths = o.outputs
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return Nop()
	}

	return log.Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
