package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/cursor"
)

// KeyMap defines the viewer key bindings.
//
// Left/Right/Up/Down map to the four navigation requests. A digit prefix
// ("3l") sets the request count.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	Top, Bottom           key.Binding

	CycleLens key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back one grapheme")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward one grapheme")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up one line")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down one line")),

		Home: key.NewBinding(key.WithKeys("home", "0", "ctrl+a"), key.WithHelp("home/0", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "$", "ctrl+e"), key.WithHelp("end/$", "line end")),

		Top:    key.NewBinding(key.WithKeys("g", "ctrl+home"), key.WithHelp("g", "buffer start")),
		Bottom: key.NewBinding(key.WithKeys("G", "ctrl+end"), key.WithHelp("G", "buffer end")),

		CycleLens: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "cycle lens")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 &&
		len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.CycleLens, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Home, km.End, km.Top, km.Bottom},
		{km.CycleLens, km.Quit},
	}
}

// Request maps msg to a navigation request with the given count. ok is
// false when msg is not one of the four navigation bindings.
func (km KeyMap) Request(msg tea.KeyMsg, count int) (req cursor.Request, ok bool) {
	switch {
	case key.Matches(msg, km.Left):
		return cursor.Request{Direction: cursor.Backward, Unit: cursor.Grapheme, Count: count}, true
	case key.Matches(msg, km.Right):
		return cursor.Request{Direction: cursor.Forward, Unit: cursor.Grapheme, Count: count}, true
	case key.Matches(msg, km.Up):
		return cursor.Request{Direction: cursor.Backward, Unit: cursor.Line, Count: count}, true
	case key.Matches(msg, km.Down):
		return cursor.Request{Direction: cursor.Forward, Unit: cursor.Line, Count: count}, true
	default:
		return cursor.Request{}, false
	}
}
