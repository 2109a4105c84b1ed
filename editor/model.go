package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/cursor"
	"github.com/iw2rmb/caret/segment"
)

// Model is a Bubble Tea component that renders a read-only buffer and moves
// a cursor over it.
type Model struct {
	cfg Config
	buf []byte
	cur cursor.Cursor

	lens    segment.Lens
	count   int
	focused bool

	viewport viewport.Model
	help     help.Model
	// xOffset is the first line cell shown; the viewport only scrolls rows.
	xOffset int
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      cfg.Buffer,
		cur:      cursor.New(),
		lens:     cfg.Lens,
		focused:  true,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.rebuildContent()
	return m
}

func (m Model) Buffer() []byte { return m.buf }

func (m Model) Cursor() cursor.Cursor { return m.cur }

// SetCursor moves the cursor to c, re-deriving it from its byte offset.
func (m Model) SetCursor(c cursor.Cursor) Model {
	next := cursor.At(m.buf, c.Z)
	if next == m.cur {
		return m
	}
	prev := m.cur
	m.cur = next
	m.refresh()
	m.emitMove(prev)
	return m
}

func (m Model) Lens() segment.Lens { return m.lens }

// PendingCount returns the digit prefix typed so far, or 0.
func (m Model) PendingCount() int { return m.count }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = max(height-statusHeight, 0)
	m.help.Width = width

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.viewport.Height == 0 && m.viewport.Width == 0 {
		return m.renderContent()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

// refresh scrolls both axes to keep the cursor visible and re-renders.
func (m *Model) refresh() {
	m.followColumn()
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) emitMove(prev cursor.Cursor) {
	if m.cfg.OnMove == nil || prev == m.cur {
		return
	}
	m.cfg.OnMove(buildMoveEvent(m.buf, prev, m.cur))
}

func (m *Model) followCursor() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if m.cur.Y < y {
		m.viewport.SetYOffset(m.cur.Y)
		return
	}
	if m.cur.Y >= y+h {
		m.viewport.SetYOffset(m.cur.Y - h + 1)
		return
	}
}

func (m *Model) followColumn() {
	w := m.textWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}
	col, cw := m.cursorCells()
	if col < m.xOffset {
		m.xOffset = col
	}
	if col+cw > m.xOffset+w {
		m.xOffset = col + cw - w
	}
}
