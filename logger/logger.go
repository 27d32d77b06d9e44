package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// diagPrefix marks lines the logger writes about itself.
const diagPrefix = "DEVLOG: "

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr

	readExclusions = parseExclusions
)

// Logger appends timestamped lines to a sink, dropping lines that contain an
// entry of the exclusion list read from its config file.
//
// The zero value is not usable; create one with New. All methods are safe for
// concurrent use.
type Logger struct {
	mu  sync.Mutex
	cfg Config

	initialized bool
	configPath  string
	outputPath  string

	out          io.Writer
	file         *os.File
	openReported bool

	exclusions  exclusionList
	lastCheck   time.Time
	lastModTime time.Time
}

// New returns a logger for config. Paths are resolved and the config file is
// read on first use, not here.
func New(config Config) *Logger {
	return &Logger{cfg: config.withDefaults()}
}

// Logf formats a message with fmt.Sprintf and writes it unless it is excluded.
// Failures never reach the caller; they are written as DEVLOG diagnostic lines.
func (l *Logger) Logf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureInit()
	l.logLine(sprintfBounded(l.cfg.MaxLineLength, format, v...))
}

// Logln formats a message with fmt.Sprint and writes it unless it is excluded.
func (l *Logger) Logln(v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureInit()
	l.logLine(truncate(fmt.Sprint(v...), l.cfg.MaxLineLength))
}

// IsExcluded reports whether line contains any currently configured exclusion.
func (l *Logger) IsExcluded(line string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureInit()
	return l.exclusions.matches(line)
}

// Exclusions returns a copy of the current exclusion list.
func (l *Logger) Exclusions() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureInit()
	out := make([]string, len(l.exclusions))
	copy(out, l.exclusions)
	return out
}

// Reload re-reads the config file now, regardless of the poll interval.
func (l *Logger) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		l.ensureInit()
		return
	}
	l.reload()
}

// ConfigPath returns the resolved exclusion config file path.
func (l *Logger) ConfigPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureInit()
	return l.configPath
}

// OutputPath returns the resolved output path. It is meaningless when
// Config.Output was set.
func (l *Logger) OutputPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureInit()
	return l.outputPath
}

// Close closes the output file if the logger opened one. A later write
// reopens it in append mode.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = nil
	return err
}

func (l *Logger) ensureInit() {
	if l.initialized {
		return
	}
	l.initialized = true

	path, err := resolveConfigPath(l.cfg.ConfigPath)
	l.configPath = path
	l.outputPath = resolveOutputPath(l.cfg.OutputPath)

	if err != nil {
		l.diagf("unable to locate home directory, falling back to %s: %v", path, err)
	}
	l.diagf("using config file: %s", l.configPath)
	l.reload()
}

func (l *Logger) logLine(line string) {
	if l.checkDue() {
		l.lastCheck = l.cfg.Clock.Now()
		if l.configChanged() {
			l.reload()
		}
	}

	if l.exclusions.matches(line) {
		return
	}
	l.writeLine(line)
}

// checkDue reports whether the poll interval has elapsed since the last check.
func (l *Logger) checkDue() bool {
	if l.lastCheck.IsZero() {
		return true
	}
	return l.cfg.Clock.Since(l.lastCheck) > l.cfg.PollInterval
}

// configChanged compares the config file mtime with the one seen at the last
// reload. A failed stat yields the zero time.
func (l *Logger) configChanged() bool {
	var mod time.Time
	info, err := os.Stat(l.configPath)
	if err != nil {
		l.diagf("unable to stat %s: %v", l.configPath, err)
	} else {
		mod = info.ModTime()
	}
	return !mod.Equal(l.lastModTime)
}

// reload replaces the exclusion list with the config file contents. On any
// read failure the previous list is kept.
func (l *Logger) reload() {
	l.lastCheck = l.cfg.Clock.Now()
	l.diagf("reading config file: %s", l.configPath)

	f, err := os.Open(l.configPath)
	if err != nil {
		l.diagf("failure reading config file: %s (%v)", l.configPath, err)
		return
	}
	defer f.Close()

	// The mtime is taken before reading so a write racing the read leaves an
	// older mtime behind and the next check reloads again.
	var mod time.Time
	if info, err := f.Stat(); err != nil {
		l.diagf("unable to stat %s: %v", l.configPath, err)
	} else {
		mod = info.ModTime()
	}

	list, err := readExclusions(f)
	if err != nil {
		l.diagf("failure reading config file: %s (%v)", l.configPath, err)
		return
	}
	l.exclusions = list
	l.lastModTime = mod

	l.diagf("done reading config file: %s (%d exclusions)", l.configPath, len(list))
}

// diagf writes a diagnostic line. It bypasses exclusions and staleness checks.
func (l *Logger) diagf(format string, v ...any) {
	l.writeLine(sprintfBounded(l.cfg.MaxLineLength, diagPrefix+format, v...))
}

func (l *Logger) writeLine(line string) {
	w := l.output()
	if w == nil {
		return
	}
	_, _ = w.Write(formatLine(l.cfg.Clock.Now(), line))
}

// output returns the sink, opening it on first use. Nil means the file could
// not be opened; the open is retried on the next write.
func (l *Logger) output() io.Writer {
	if l.out != nil {
		return l.out
	}

	switch {
	case l.cfg.Output != nil:
		l.out = l.cfg.Output
	case l.outputPath == StdoutPath:
		l.out = outStdout
	default:
		f, err := os.OpenFile(l.outputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			if !l.openReported {
				l.openReported = true
				fmt.Fprintf(outStderr, "failed to open log file %s: %v\n", l.outputPath, err)
			}
			return nil
		}
		l.file = f
		l.out = f
	}
	return l.out
}
