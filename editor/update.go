package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/cursor"
	"github.com/iw2rmb/caret/internal/log"
)

const maxCount = 1_000_000

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	if key.Matches(msg, km.Quit) {
		return m, tea.Quit
	}
	if !m.focused {
		return m, nil
	}

	if d, ok := countDigit(msg, m.count); ok {
		m.count = min(m.count*10+d, maxCount)
		return m, nil
	}
	typed := m.count
	n := max(typed, 1)
	m.count = 0

	prev := m.cur
	if req, ok := km.Request(msg, n); ok {
		m.cur = m.cur.Step(m.buf, req)
		log.Debug(log.CatNav, "step", "req", req, "from", prev, "to", m.cur)
	} else {
		switch {
		case key.Matches(msg, km.Home):
			m.cur = m.cur.LineStart(m.buf)
		case key.Matches(msg, km.End):
			m.cur = m.cur.LineEnd(m.buf)
		case key.Matches(msg, km.Top):
			m.cur = m.cur.Seek(m.buf, 0, 0)
		case key.Matches(msg, km.Bottom):
			if typed > 0 {
				m.cur = m.cur.Seek(m.buf, 0, typed-1)
			} else {
				m.cur = cursor.End(m.buf)
			}
		case key.Matches(msg, km.CycleLens):
			m.lens = m.lens.Next()
			log.Debug(log.CatUI, "lens", "lens", m.lens)
			m.rebuildContent()
			return m, nil
		default:
			return m, nil
		}
	}

	if m.cur != prev {
		m.refresh()
		m.emitMove(prev)
	}
	return m, nil
}

// countDigit reports whether msg extends a count prefix. A leading '0' is
// not a count digit so it stays available as a binding.
func countDigit(msg tea.KeyMsg, pending int) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	if r == '0' && pending == 0 {
		return 0, false
	}
	return int(r - '0'), true
}
