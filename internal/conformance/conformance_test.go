package conformance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	r := strings.NewReader("# a comment\n\n0041 0042\n  \n0043\n")
	lines, err := Parse(r)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, []rune{0x41, 0x42}, lines[0].CodePoints)
	require.Equal(t, 3, lines[0].SourceLine)
	require.Equal(t, []rune{0x43}, lines[1].CodePoints)
	require.Equal(t, 5, lines[1].SourceLine)
}

func TestParseRejectsInvalidHex(t *testing.T) {
	r := strings.NewReader("004Z\n")
	_, err := Parse(r)
	require.Error(t, err)
}

func TestLineHasSurrogate(t *testing.T) {
	withSurrogate := Line{CodePoints: []rune{0x41, 0xD800}}
	require.True(t, withSurrogate.HasSurrogate())

	without := Line{CodePoints: []rune{0x41, 0x42}}
	require.False(t, without.HasSurrogate())
}

func TestLineString(t *testing.T) {
	l := Line{CodePoints: []rune{'h', 'i'}}
	require.Equal(t, "hi", l.String())
}

func TestParseSampleFixtureIsWellFormed(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "..", "testdata", "conformance_sample.txt"))
	require.NoError(t, err)
	defer f.Close()

	lines, err := Parse(f)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		require.False(t, l.HasSurrogate())
	}
}
