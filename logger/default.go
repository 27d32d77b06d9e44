package logger

import "sync"

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, creating it from the environment
// on first use.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		defaultLogger = New(Config{})
	}
	return defaultLogger
}

// Init replaces the process-wide logger and closes the previous one. Call it
// at startup, before any logging. A caller still holding the previous logger
// from Default reopens its output file on the next write and must Close it.
func Init(config Config) {
	defaultMu.Lock()
	old := defaultLogger
	defaultLogger = New(config)
	defaultMu.Unlock()

	if old != nil {
		_ = old.Close()
	}
}

// Logf logs through the default logger. No setup is required.
func Logf(format string, v ...any) {
	Default().Logf(format, v...)
}

// Logln logs through the default logger using fmt.Sprint formatting.
func Logln(v ...any) {
	Default().Logln(v...)
}

// Close closes the default logger's output file, if any.
func Close() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultMu.Unlock()

	if l == nil {
		return nil
	}
	return l.Close()
}
