package logger

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggerWithCaller adds caller information to the logger
func LoggerWithCaller(skip int) Logger {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return GetLogger()
	}

	// Extract just the filename without the full path
	parts := strings.Split(file, "/")
	filename := parts[len(parts)-1]

	return GetLogger().WithField("caller", fmt.Sprintf("%s:%d", filename, line))
}

// LogDemoStart logs the beginning of a single demo
func LogDemoStart(name string) {
	GetLogger().WithFields(map[string]interface{}{
		"demo": name,
	}).Debug("Demo started")
}

// LogDemoComplete logs a finished demo with its wall-clock duration
func LogDemoComplete(name string, duration time.Duration) {
	GetLogger().WithFields(map[string]interface{}{
		"demo":        name,
		"duration_ms": duration.Milliseconds(),
	}).Debug("Demo completed")
}

// LogDemoError logs a demo failure that the driver contained
func LogDemoError(name string, err error) {
	GetLogger().WithFields(map[string]interface{}{
		"demo": name,
	}).WithError(err).Error("Demo failed")
}

// LogRunSummary logs the outcome of a full demo run
func LogRunSummary(completed, failed int, interrupted bool, duration time.Duration) {
	GetLogger().WithFields(map[string]interface{}{
		"completed":   completed,
		"failed":      failed,
		"interrupted": interrupted,
		"duration_ms": duration.Milliseconds(),
	}).Info("Demo run finished")
}

// MustGetLogger gets the logger or panics if it fails
func MustGetLogger() Logger {
	logger := GetLogger()
	if logger == nil {
		panic("logger not initialized")
	}
	return logger
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

// nopLogger is a logger that does nothing (useful for testing)
type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) Fatal(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) WithContext(ctx context.Context) Logger                    { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) FatalWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger                               { return nil }
