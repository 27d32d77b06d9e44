package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

func discardOutput() func() {
	oldStdout, oldStderr := outStdout, outStderr
	outStdout = io.Discard
	outStderr = io.Discard
	return func() {
		outStdout = oldStdout
		outStderr = oldStderr
	}
}

// writeConfig writes lines to path and pins its mtime so reload detection
// does not depend on filesystem timestamp granularity.
func writeConfig(t *testing.T, path string, mtime time.Time, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

type testLogger struct {
	*Logger
	buf        *bytes.Buffer
	clock      *clock.Mock
	configPath string
}

// newTestLogger returns a logger writing to a buffer, driven by a mock clock,
// with a config file holding exclusions.
func newTestLogger(t *testing.T, exclusions ...string) *testLogger {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "devlog.cfg")
	writeConfig(t, configPath, time.Unix(1700000000, 0), exclusions...)

	buf := &bytes.Buffer{}
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 1, 31, 15, 45, 2, 0, time.Local))
	l := New(Config{ConfigPath: configPath, Output: buf, Clock: mock})
	return &testLogger{Logger: l, buf: buf, clock: mock, configPath: configPath}
}

// splitLine separates the timestamp and message of an output line.
func splitLine(line string) (ts, msg string, ok bool) {
	return strings.Cut(line, " - ")
}

func outputLines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// messages returns the message part of every non-diagnostic line.
func messages(buf *bytes.Buffer) []string {
	var out []string
	for _, line := range outputLines(buf) {
		_, msg, ok := splitLine(line)
		if !ok || strings.HasPrefix(msg, diagPrefix) {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// diagnostics returns the message part of every DEVLOG line.
func diagnostics(buf *bytes.Buffer) []string {
	var out []string
	for _, line := range outputLines(buf) {
		_, msg, ok := splitLine(line)
		if ok && strings.HasPrefix(msg, diagPrefix) {
			out = append(out, msg)
		}
	}
	return out
}
