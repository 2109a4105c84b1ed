package editor

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/caret/internal/grapheme"
	"github.com/iw2rmb/caret/segment"
)

const statusHeight = 1

// palette is a per-frame colour sequence. Every render builds its own, so
// no colour state survives between frames or models.
type palette struct {
	rng *rand.Rand
}

func newPalette(seed uint64) palette {
	return palette{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p palette) next() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(p.rng.IntN(231)))
}

// renderContent walks the buffer's clusters once, tracking the running
// (x, y) of each, and highlights the cluster whose (x, y) equals the
// cursor's. Line text is clipped to the horizontal window; the gutter is
// not.
func (m *Model) renderContent() string {
	st := m.cfg.Style
	pal := newPalette(m.cfg.ColorSeed)

	var (
		lines []string
		sb    strings.Builder
	)
	x, y, cells := 0, 0, 0

	for _, tok := range segment.Segments(m.buf, m.lens) {
		tokStyle := st.Text
		if st.Tokens {
			tokStyle = tokStyle.Foreground(pal.next())
		}

		rest := []byte(tok)
		state := -1
		for len(rest) > 0 {
			var c []byte
			c, rest, state = grapheme.Step(rest, state)
			cl := string(c)
			focus := m.focused && x == m.cur.X && y == m.cur.Y

			if grapheme.IsLineBreak(cl) {
				if focus {
					sb.WriteString(st.Cursor.Render(" "))
				}
				lines = append(lines, sb.String())
				sb.Reset()
				x, y, cells = 0, y+1, 0
				continue
			}

			w := grapheme.CellWidth(cl, cells, m.cfg.TabWidth)
			text := cl
			if cl == "\t" {
				text = strings.Repeat(" ", w)
			}
			s := tokStyle
			if focus {
				s = st.Cursor
			}
			sb.WriteString(s.Render(text))
			x += len(c)
			cells += w
		}
	}

	if m.focused && x == m.cur.X && y == m.cur.Y {
		sb.WriteString(st.Cursor.Render(" "))
	}
	lines = append(lines, sb.String())

	digits := m.gutterDigits()
	textWidth := m.textWidth()
	var out strings.Builder
	for row, line := range lines {
		if row > 0 {
			out.WriteByte('\n')
		}
		m.writeGutter(&out, row, digits)
		if textWidth > 0 {
			line = ansi.Cut(line, m.xOffset, m.xOffset+textWidth)
		}
		out.WriteString(line)
	}
	return out.String()
}

func (m Model) gutterDigits() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(bytes.Count(m.buf, []byte{'\n'}) + 1)
}

// textWidth is the number of cells left for line text, or 0 when the
// viewport has no width yet.
func (m Model) textWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if w <= 0 {
		return 0
	}
	if m.cfg.ShowLineNums {
		w -= m.gutterDigits() + 1
	}
	return max(w, 1)
}

// cursorCells returns the cell column of the cursor on its line and the
// width of the cell run it covers.
func (m Model) cursorCells() (col, width int) {
	rest := m.buf[segment.LineStart(m.buf, m.cur.Z):m.cur.Z]
	state := -1
	for len(rest) > 0 {
		var c []byte
		c, rest, state = grapheme.Step(rest, state)
		col += grapheme.CellWidth(string(c), col, m.cfg.TabWidth)
	}
	cl := m.cur.Current(m.buf)
	if cl == "" || grapheme.IsLineBreak(cl) {
		return col, 1
	}
	return col, max(grapheme.CellWidth(cl, col, m.cfg.TabWidth), 1)
}

func (m *Model) writeGutter(sb *strings.Builder, row, digits int) {
	if !m.cfg.ShowLineNums {
		return
	}
	numStyle := m.cfg.Style.LineNum
	if m.focused && row == m.cur.Y {
		numStyle = m.cfg.Style.LineNumActive
	}
	sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
	sb.WriteString(m.cfg.Style.Gutter.Render(" "))
}

func (m Model) renderStatus() string {
	lineStart := segment.LineStart(m.buf, m.cur.Z)
	col := grapheme.Count(string(m.buf[lineStart:m.cur.Z])) + 1

	current := m.cur.Current(m.buf)
	if current == "" {
		current = "EOF"
	} else {
		current = strconv.Quote(current)
	}

	pos := fmt.Sprintf("Ln %d, Col %d  %v  %s  %s", m.cur.Y+1, col, m.cur, m.lens, current)
	if m.count > 0 {
		pos += fmt.Sprintf("  %d", m.count)
	}
	status := m.cfg.Style.Status.Render(pos)
	if hv := m.help.View(m.cfg.KeyMap); hv != "" && m.help.Width-lipgloss.Width(status) > lipgloss.Width(hv)+2 {
		status += "  " + hv
	}
	return status
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
