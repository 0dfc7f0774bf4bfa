// =============================================================================
// Supplier Label Generator - Logging Module
// =============================================================================
//
// This module defines the Logger interface the pipeline logs through and
// its zap-backed implementation. The pipeline never logs recovered input
// anomalies (mapping misses, unparseable values, barcode fallbacks) above
// debug level; they are expected input variability, not errors.
//
// =============================================================================

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the printf-style logging interface used across the pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// ZAP-BACKED LOGGER
// =============================================================================

// New builds a zap-backed Logger.
//
// PARAMETERS:
//   - level: One of "debug", "info", "warn", "error".
//   - file: Optional log file path; empty logs to stderr only.
//
// RETURNS:
//   - The Logger.
//   - A flush function to call on shutdown.
//   - An error if the level is unknown or the file cannot be opened.
func New(level, file string) (Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	base, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	flush := func() { _ = base.Sync() }
	return &zapLogger{sugar: base.Sugar()}, flush, nil
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }
func (l *zapLogger) Info(msg string, args ...interface{})  { l.sugar.Infof(msg, args...) }
func (l *zapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnf(msg, args...) }
func (l *zapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }

// =============================================================================
// NO-OP LOGGER
// =============================================================================

// Nop returns a Logger that discards everything. Used in tests and as the
// fallback when no logger is supplied.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
