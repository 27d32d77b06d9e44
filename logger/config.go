package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mitchellh/go-homedir"
)

const (
	// EnvConfigFile overrides the exclusion config file path.
	EnvConfigFile = "DEV_LOG_CONFIG_FILE"
	// EnvOutputFile overrides the output file path.
	EnvOutputFile = "DEV_LOG_OUTPUT_FILE"

	// StdoutPath selects standard output as the sink.
	StdoutPath = "-"

	// DefaultPollInterval is how long a config staleness check stays valid.
	DefaultPollInterval = 5 * time.Second
	// DefaultMaxLineLength caps a formatted message, in bytes.
	DefaultMaxLineLength = 8191
)

// Config defines options for New and Init.
// Zero values resolve from the environment or fall back to defaults.
type Config struct {
	// ConfigPath is the exclusion list file, one substring per line.
	// Default: $DEV_LOG_CONFIG_FILE, else ~/.devlog (~\devlog.cfg on Windows)
	ConfigPath string
	// OutputPath is the file lines are appended to; "-" writes to stdout.
	// Default: $DEV_LOG_OUTPUT_FILE, else /tmp/devlog.log (C:\temp\devlog.log on Windows)
	OutputPath string
	// Output overrides OutputPath when set. It is never closed by the logger.
	// Default: nil
	Output io.Writer
	// PollInterval is the minimum time between config file mtime checks.
	// Default: 5s
	PollInterval time.Duration
	// MaxLineLength truncates longer messages.
	// Default: 8191
	MaxLineLength int
	// Clock drives timestamps and the poll interval.
	// Default: wall clock
	Clock clock.Clock
}

func defaultConfigName() string {
	if runtime.GOOS == "windows" {
		return "devlog.cfg"
	}
	return ".devlog"
}

func defaultOutputPath() string {
	if runtime.GOOS == "windows" {
		return `C:\temp\devlog.log`
	}
	return "/tmp/devlog.log"
}

// resolveConfigPath returns the config file path to use. When the home
// directory cannot be determined the bare file name is returned along with
// the error so the caller can report it.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return env, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return defaultConfigName(), fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigName()), nil
}

func resolveOutputPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvOutputFile); env != "" {
		return env
	}
	return defaultOutputPath()
}

// withDefaults fills the non-path fields; paths are resolved lazily on first use.
func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = DefaultMaxLineLength
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return c
}
