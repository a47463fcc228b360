package logging

import "context"

// Level represents log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Fields represents structured logging fields
type Fields map[string]any

// Logger defines the interface that the library expects for logging.
// The identification engine only ever logs through this interface so an
// embedding application can route output into its own logger.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields
	WithFields(fields Fields) Logger

	// WithContext returns a logger that can extract fields from context
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum log level
	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		globalLogger = &NoOpLogger{}
	} else {
		globalLogger = logger
	}
}

// GetGlobalLogger returns the current global logger
func GetGlobalLogger() Logger {
	return globalLogger
}

// WithFields returns the global logger with preset fields.
//
// Example:
//
//	logger := logging.WithFields(logging.Fields{"component": "pattern_store"})
//	logger.Warn("skipping malformed dictionary entry")
func WithFields(fields Fields) Logger {
	return globalLogger.WithFields(fields)
}

// Debug logs through the global logger
func Debug(msg string, fields ...Fields) {
	globalLogger.Debug(msg, fields...)
}

// Info logs through the global logger
func Info(msg string, fields ...Fields) {
	globalLogger.Info(msg, fields...)
}

// Warn logs through the global logger
func Warn(msg string, fields ...Fields) {
	globalLogger.Warn(msg, fields...)
}

// Error logs through the global logger
func Error(err error, msg string, fields ...Fields) {
	globalLogger.Error(err, msg, fields...)
}
