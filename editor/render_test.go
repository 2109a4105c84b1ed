package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func trueColorStyle() (Style, lipgloss.Style) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	cur := r.NewStyle().Reverse(true)
	return Style{Text: r.NewStyle(), Cursor: cur}, cur
}

func TestRender_HighlightsClusterUnderCursor(t *testing.T) {
	st, cur := trueColorStyle()
	m := New(Config{Buffer: []byte("ab"), Style: st})

	if got := m.View(); !strings.Contains(got, cur.Render("a")) {
		t.Fatalf("cursor on a not highlighted: %q", got)
	}

	m = press(t, m, "l")
	if got := m.View(); !strings.Contains(got, cur.Render("b")) {
		t.Fatalf("cursor on b not highlighted: %q", got)
	}

	m = press(t, m, "l")
	got := m.View()
	if !strings.HasSuffix(got, cur.Render(" ")) {
		t.Fatalf("cursor past end not drawn: %q", got)
	}
	if plain := ansi.Strip(got); plain != "ab " {
		t.Fatalf("plain view: got %q, want %q", plain, "ab ")
	}
}

func TestRender_CursorOnMultiByteCluster(t *testing.T) {
	st, cur := trueColorStyle()
	m := New(Config{Buffer: []byte("xe\u0301y"), Style: st})

	m = press(t, m, "l")
	if got := m.View(); !strings.Contains(got, cur.Render("e\u0301")) {
		t.Fatalf("combining cluster not highlighted as a unit: %q", got)
	}
}

func TestRender_CursorOnBlankLine(t *testing.T) {
	st, cur := trueColorStyle()
	m := New(Config{Buffer: []byte("\n\nx"), Style: st})

	got := m.View()
	if !strings.HasPrefix(got, cur.Render(" ")+"\n") {
		t.Fatalf("blank-line cursor not drawn: %q", got)
	}
}

func TestRender_BlurHidesCursor(t *testing.T) {
	st, _ := trueColorStyle()
	m := New(Config{Buffer: []byte("ab"), Style: st}).Blur()

	if got := m.View(); strings.Contains(got, "\x1b[7m") {
		t.Fatalf("blurred view draws a cursor: %q", got)
	}
}

func TestRender_ExpandsTabs(t *testing.T) {
	m := New(Config{Buffer: []byte("\tx\nab\tc"), TabWidth: 4}).Blur()

	if got, want := ansi.Strip(m.View()), "    x\nab  c"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_GutterWidthFollowsLineCount(t *testing.T) {
	text := strings.Repeat("x\n", 10) + "y"
	m := New(Config{Buffer: []byte(text), ShowLineNums: true}).Blur()

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if got, want := lines[0], " 1 x"; got != want {
		t.Fatalf("first line: got %q, want %q", got, want)
	}
	if got, want := lines[10], "11 y"; got != want {
		t.Fatalf("last line: got %q, want %q", got, want)
	}
}

func TestRender_TokenColoursAreDeterministic(t *testing.T) {
	st, _ := trueColorStyle()
	st.Tokens = true
	cfg := Config{Buffer: []byte("one two. three"), Style: st, ColorSeed: 7}

	a := New(cfg)
	b := New(cfg)
	if a.View() != b.View() {
		t.Fatalf("equal seeds rendered differently")
	}
	if a.View() != a.View() {
		t.Fatalf("repeated renders differ")
	}
	if got := ansi.Strip(a.View()); got != "one two. three" {
		t.Fatalf("plain view: got %q", got)
	}

	a, _ = a.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if got := ansi.Strip(a.View()); got != "one two. three" {
		t.Fatalf("word lens changed the text: got %q", got)
	}
}

func TestRenderStatus_PositionAndCurrent(t *testing.T) {
	m := New(Config{Buffer: []byte("e\u0301x\nyz")})
	m = m.SetSize(60, 3)
	m = press(t, m, "l")

	lines := strings.Split(m.View(), "\n")
	status := ansi.Strip(lines[len(lines)-1])
	if want := `Ln 1, Col 2  (3,0,3)  graphemes  "x"`; !strings.HasPrefix(status, want) {
		t.Fatalf("status: got %q, want prefix %q", status, want)
	}

	m = press(t, m, "G")
	lines = strings.Split(m.View(), "\n")
	status = ansi.Strip(lines[len(lines)-1])
	if want := `Ln 2, Col 3  (2,1,7)  graphemes  EOF`; !strings.HasPrefix(status, want) {
		t.Fatalf("status at end: got %q, want prefix %q", status, want)
	}
}

func TestRenderStatus_ShowsPendingCount(t *testing.T) {
	m := New(Config{Buffer: []byte("abc")})
	m = m.SetSize(60, 2)
	m = press(t, m, "4")

	lines := strings.Split(m.View(), "\n")
	status := ansi.Strip(lines[len(lines)-1])
	if !strings.Contains(status, `"a"  4`) {
		t.Fatalf("status without pending count: %q", status)
	}
}

func TestGutterDigits(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 9: 1, 10: 2, 123: 3}
	for n, want := range cases {
		if got := gutterDigits(n); got != want {
			t.Fatalf("gutterDigits(%d): got %d, want %d", n, got, want)
		}
	}
}
