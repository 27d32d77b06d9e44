package logger

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExclusions(t *testing.T) {
	list, err := parseExclusions(strings.NewReader("foo\nbar  \n\n\t\nbaz qux\r\n"))
	require.NoError(t, err)
	assert.Equal(t, exclusionList{"foo", "bar", "baz qux"}, list)
}

func TestParseExclusions_NoTrailingNewline(t *testing.T) {
	list, err := parseExclusions(strings.NewReader("foo\nbar"))
	require.NoError(t, err)
	assert.Equal(t, exclusionList{"foo", "bar"}, list)
}

func TestParseExclusions_VeryLongLine(t *testing.T) {
	long := strings.Repeat("z", 2<<20)
	list, err := parseExclusions(strings.NewReader("foo\n" + long + "\nbar\n"))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "foo", list[0])
	assert.Len(t, list[1], len(long))
	assert.Equal(t, "bar", list[2])
}

func TestParseExclusions_Empty(t *testing.T) {
	list, err := parseExclusions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseExclusions_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := parseExclusions(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestExclusionListMatches(t *testing.T) {
	list := exclusionList{"foo", "bar"}

	assert.True(t, list.matches("a foo event"))
	assert.True(t, list.matches("bar"))
	assert.False(t, list.matches("a baz event"))
	assert.False(t, list.matches("Foo"))
	assert.False(t, exclusionList(nil).matches("anything"))
}
