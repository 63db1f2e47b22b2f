package contracts

import "time"

// LogLevel represents the severity level for logging.
type LogLevel int

// Levels order from most to least verbose. The zero value is reserved so
// options can tell "unset" apart from an explicit level.
const (
	// DebugLevel indicates verbose messages useful while troubleshooting.
	DebugLevel LogLevel = iota + 1
	// InfoLevel indicates informational messages that highlight the progress of the application.
	InfoLevel
	// WarnLevel indicates potentially harmful situations that should be monitored.
	WarnLevel
	// ErrorLevel indicates serious issues that need attention.
	ErrorLevel
	// FatalLevel indicates very severe errors that will presumably lead the application to abort.
	FatalLevel
)

// Field accumulates a single typed key/value pair for structured logging.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
}

// Logger provides leveled, structured logging for every component of the SDK.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
}
