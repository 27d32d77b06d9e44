package logger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// exclusionList is an immutable snapshot. Reloads build a new list and swap it.
type exclusionList []string

// matches reports whether line contains any entry, case-sensitively.
func (e exclusionList) matches(line string) bool {
	for _, s := range e {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// parseExclusions reads one substring per line; lines may be of any length.
// Trailing whitespace is trimmed and lines left empty are dropped, since an
// empty entry would suppress every message.
func parseExclusions(r io.Reader) (exclusionList, error) {
	var list exclusionList
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if entry := strings.TrimRightFunc(line, unicode.IsSpace); entry != "" {
			list = append(list, entry)
		}
		if err == io.EOF {
			return list, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading exclusions: %w", err)
		}
	}
}
