package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu            sync.RWMutex
	defaultLogger = zap.NewNop()
)

// ParseLevel converts a textual level into a zap level. Unknown values fall
// back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger: JSON output in production, console output otherwise.
func New(level string, production bool) (*zap.Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// SetGlobal replaces the logger used by the package-level helpers.
func SetGlobal(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// L returns the global structured logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func Sync() {
	_ = L().Sync()
}

// Package-level functions for easy access
func Debug(format string, v ...interface{}) { L().Sugar().Debugf(format, v...) }
func Info(format string, v ...interface{})  { L().Sugar().Infof(format, v...) }
func Warn(format string, v ...interface{})  { L().Sugar().Warnf(format, v...) }
func Error(format string, v ...interface{}) { L().Sugar().Errorf(format, v...) }
func Fatal(format string, v ...interface{}) { L().Sugar().Fatalf(format, v...) }
