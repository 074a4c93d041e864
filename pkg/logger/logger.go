package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap so every Error and Fatal call carries the error as a field.
type Logger struct {
	*zap.Logger
}

// NewLogger builds a JSON logger for production and a coloured console
// logger otherwise. LOG_LEVEL (debug, info, warn, error) overrides the level.
func NewLogger(env string) *Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if level, err := zapcore.ParseLevel(raw); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{Logger: logger}
}

// With returns a child logger that adds fields to every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logger.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string, err error, fields ...zap.Field) {
	l.Logger.Error(msg, append(fields, zap.Error(err))...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logger.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Fatal(msg string, err error, fields ...zap.Field) {
	l.Logger.Fatal(msg, append(fields, zap.Error(err))...)
}

func (l *Logger) Sync() error {
	return l.Logger.Sync()
}
