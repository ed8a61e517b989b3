package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesIdenticalContent(t *testing.T) {
	t.Parallel()

	doc := []byte("line1\nline2\nline3\n")
	require.Empty(t, Lines(doc, doc, "before", "after"))
}

func TestLinesSingleLineChange(t *testing.T) {
	t.Parallel()

	result := Lines([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "preset", "resolved")

	require.True(t, strings.HasPrefix(result, "--- preset\n+++ resolved\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, result, " line1\n")
	require.Contains(t, result, "-line2\n")
	require.Contains(t, result, "+modified\n")
	require.Contains(t, result, " line3\n")
	require.Equal(t, []string{"modified"}, Changed(result))
}

func TestLinesWholeLinesOnly(t *testing.T) {
	t.Parallel()

	result := Lines([]byte("tableClass: table striped\n"), []byte("tableClass: table bordered\n"), "a", "b")
	require.Contains(t, result, "-tableClass: table striped\n")
	require.Contains(t, result, "+tableClass: table bordered\n")
}

func TestLinesAddedAndRemoved(t *testing.T) {
	t.Parallel()

	result := Lines([]byte("a\nb\n"), []byte("a\nb\nc\n"), "x", "y")
	require.Equal(t, []string{"c"}, Changed(result))

	result = Lines([]byte("a\nb\nc\n"), []byte("a\nc\n"), "x", "y")
	require.Contains(t, result, "-b\n")
	require.Empty(t, Changed(result))
}

func TestLinesTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("old\n")
		after.WriteString("new\n")
	}

	result := Lines([]byte(before.String()), []byte(after.String()), "x", "y")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	require.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
