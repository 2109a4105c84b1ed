package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const jago = "# Jago\n\n> `Canker` but communist.\n\n## Intro\n\n" +
	"The name Alec Thompson is one that most of us know for one reason or another. " +
	"The same face might come to mind for each of us.\n\n## Canker\n\n" +
	"Canker was founded by one of the Alec Thompsons.\n"

type item struct {
	Off  int
	Text string
}

func collect(seq func(func(int, string) bool)) []item {
	var out []item
	for off, s := range seq {
		out = append(out, item{Off: off, Text: s})
	}
	return out
}

func TestForward_YieldsClustersWithOffsets(t *testing.T) {
	buf := []byte("ae\u0301\r\n🇩🇪")
	got := collect(Forward(buf, 0))
	require.Equal(t, []item{
		{0, "a"},
		{1, "e\u0301"},
		{4, "\r\n"},
		{6, "🇩🇪"},
	}, got)

	got = collect(Forward(buf, 4))
	require.Equal(t, []item{{4, "\r\n"}, {6, "🇩🇪"}}, got)
}

func TestForward_OutOfRangeIsEmpty(t *testing.T) {
	buf := []byte("abc")
	require.Empty(t, collect(Forward(buf, -1)))
	require.Empty(t, collect(Forward(buf, 4)))
	require.Empty(t, collect(Forward(buf, 3)))
	require.Empty(t, collect(Forward(nil, 0)))
}

func TestBackward_MirrorsForward(t *testing.T) {
	buf := []byte("x\u0301y\n\nab🙂\r\nz")
	fwd := collect(Forward(buf, 0))
	bwd := collect(Backward(buf, len(buf)))
	require.Len(t, bwd, len(fwd))
	for i := range fwd {
		require.Equal(t, fwd[len(fwd)-1-i], bwd[i], "index %d", i)
	}
}

func TestBackward_FromMiddle(t *testing.T) {
	buf := []byte("# Jago\n\n>")
	got := collect(Backward(buf, 7))
	require.Equal(t, item{6, "\n"}, got[0])
	require.Equal(t, item{5, "o"}, got[1])
	require.Len(t, got, 7)

	require.Empty(t, collect(Backward(buf, 0)))
	require.Empty(t, collect(Backward(buf, len(buf)+1)))
}

func TestForwardAndBackward_StopEarly(t *testing.T) {
	buf := []byte("abc\ndef")
	n := 0
	for range Forward(buf, 0) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)

	var last item
	for off, c := range Backward(buf, len(buf)) {
		last = item{off, c}
		if c == "\n" {
			break
		}
	}
	require.Equal(t, item{3, "\n"}, last)
}

func TestViews_AreRestartable(t *testing.T) {
	buf := []byte("ab\ncd")
	seq := Backward(buf, len(buf))
	require.Equal(t, collect(seq), collect(seq))
	lines := Lines(buf, 0)
	require.Equal(t, collect(lines), collect(lines))
}

func TestLines_SplitsBlocksLikeLineBounds(t *testing.T) {
	var got []string
	for _, block := range Lines([]byte(jago), 0) {
		got = append(got, block)
	}
	require.Equal(t, []string{
		"# Jago", "\n", "\n",
		"> `Canker` but communist.", "\n", "\n",
		"## Intro", "\n", "\n",
		"The name Alec Thompson is one that most of us know for one reason or another. The same face might come to mind for each of us.", "\n", "\n",
		"## Canker", "\n", "\n",
		"Canker was founded by one of the Alec Thompsons.", "\n",
	}, got)
}

func TestLines_OffsetsAndCRLF(t *testing.T) {
	got := collect(Lines([]byte("ab\r\n\ncd"), 1))
	require.Equal(t, []item{
		{1, "b"},
		{2, "\r\n"},
		{4, "\n"},
		{5, "cd"},
	}, got)
}

func TestLinesBackward_ReversesLines(t *testing.T) {
	buf := []byte("# Jago\n\n> `Canker`")
	got := collect(LinesBackward(buf, len(buf)))
	require.Equal(t, []item{
		{8, "> `Canker`"},
		{7, "\n"},
		{6, "\n"},
		{0, "# Jago"},
	}, got)

	got = collect(LinesBackward(buf, 4))
	require.Equal(t, []item{{0, "# J"}}, got)
}

func TestLineStartEndLen(t *testing.T) {
	buf := []byte("# Jago\n\n> `Canker`")
	cases := []struct {
		at               int
		start, end, size int
	}{
		{at: 0, start: 0, end: 6, size: 6},
		{at: 3, start: 0, end: 6, size: 6},
		{at: 6, start: 0, end: 6, size: 6},
		{at: 7, start: 7, end: 7, size: 0},
		{at: 8, start: 8, end: 18, size: 10},
		{at: 18, start: 8, end: 18, size: 10},
		{at: 99, start: 8, end: 18, size: 10},
	}
	for _, tc := range cases {
		require.Equal(t, tc.start, LineStart(buf, tc.at), "LineStart(%d)", tc.at)
		require.Equal(t, tc.end, LineEnd(buf, tc.at), "LineEnd(%d)", tc.at)
		require.Equal(t, tc.size, LineLen(buf, tc.at), "LineLen(%d)", tc.at)
	}
}
