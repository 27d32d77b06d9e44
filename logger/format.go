package logger

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// timestampLayout renders as YYYYMMDD/HHMMSS.mmm.
const timestampLayout = "20060102/150405.000"

func formatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// formatLine builds the text written for one message, newline included.
func formatLine(t time.Time, line string) []byte {
	ts := formatTimestamp(t)
	buf := make([]byte, 0, len(ts)+len(line)+4)
	buf = append(buf, ts...)
	buf = append(buf, " - "...)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	return buf
}

func sprintfBounded(max int, format string, args ...any) string {
	return truncate(fmt.Sprintf(format, args...), max)
}
