// Package logger provides structured logging for the demo toolkit.
//
// It wraps the zerolog library to provide a clean, easy-to-use API with support for:
// - Multiple log levels (Debug, Info, Warn, Error, Fatal)
// - Structured logging with fields
// - Pretty console output with colors, always on stderr
// - Optional file output
// - Global logger instance for easy access
//
// Logs go to stderr because stdout carries the demo animations; a log
// line written into a \r-rewritten animation would corrupt the frame.
//
// Basic Usage:
//
//	import "termfx/pkg/logger"
//
//	// Initialize the global logger
//	cfg := &config.LoggingConfig{
//	    Level: "warn",
//	    File:  "",
//	}
//	err := logger.Initialize(cfg)
//
//	// Use the global logger
//	logger.Info("Starting demo run")
//	logger.WithField("demo", "countdown").Debug("Demo started")
//	logger.WithError(err).Error("Demo failed")
//
// Advanced Usage:
//
//	// Create a logger instance with fields
//	log := logger.GetLogger().
//	    WithField("component", "runner")
//
//	// Use structured logging
//	log.InfoWithFields("Demo run finished", map[string]interface{}{
//	    "completed": 10,
//	    "failed":    0,
//	    "duration":  time.Second * 42,
//	})
//
// The logger supports the following configuration options:
// - Level: Log level (debug, info, warn, error, fatal)
// - File: Path to log file (empty for console only)
package logger
