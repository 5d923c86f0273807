package interfaces

import "context"

// Logger is the leveled logging contract used throughout the blog runtime.
// The method set matches github.com/goliatone/go-logger, so hosts already
// using that package can supply their logger directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. An implementation may return a
// shared instance or scope children per module name.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension: implementations return a new logger
// that carries the supplied fields on every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
