// Package logger provides structured logging for the Vanta client libraries.
//
// It wraps Uber's Zap logger with a simplified message/error/fields calling
// convention, optional trace correlation, and an Fx module for dependency
// injection.
//
// # Architecture
//
//   - Logger struct: thin wrapper over *zap.Logger
//   - NewLoggerClient: builds a production JSON logger from Config
//   - NewNop: discard-everything logger for tests and defaults
//   - FXModule: provides the logger and flushes it on shutdown
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.DefaultConfig())
//	log.Info("collection flushed", nil, map[string]interface{}{
//		"collection": "books",
//	})
//
// # Trace Correlation
//
// When Config.EnableTracing is set, the *WithContext methods extract the
// active OpenTelemetry trace and span IDs from the context and attach them
// as trace_id and span_id fields, correlating log entries with distributed
// traces.
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
