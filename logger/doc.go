// Package logger provides a process-local line logger with a reloadable
// exclusion list.
//
// # Output
//
// Every message becomes one line:
//
//	20240131/154502.123 - message text
//
// Lines are appended to a file (default /tmp/devlog.log, or DEV_LOG_OUTPUT_FILE)
// or to stdout when the output path is "-". Messages longer than
// Config.MaxLineLength bytes are silently truncated.
//
// # Exclusions
//
// The config file (default ~/.devlog, or DEV_LOG_CONFIG_FILE) lists one
// substring per line. A message containing any of them is dropped. Trailing
// whitespace is trimmed and blank lines are ignored.
//
// The file is not watched. At most once per Config.PollInterval, a log call
// compares the file's modification time with the one seen at the last read
// and re-reads it when they differ. Edits therefore show up on the first
// call after the interval elapses.
//
// # Diagnostics
//
// The logger reports on itself with lines prefixed "DEVLOG: " (config file
// used, reload start and end, read or stat failures). These are never
// filtered. Logging calls never return errors or panic on I/O failure.
//
// # Usage
//
// No setup is needed:
//
//	logger.Logf("cache miss for %s", key)
//
// Or configure the default logger once at startup:
//
//	logger.Init(logger.Config{OutputPath: "./dev.log"})
//	defer logger.Close()
//
// Independent loggers can be created with New.
package logger
