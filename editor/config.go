package editor

import "github.com/iw2rmb/caret/segment"

// Config configures the viewer Model.
type Config struct {
	// Buffer is the immutable snapshot to navigate. The Model never mutates it.
	Buffer []byte

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	Lens         segment.Lens
	Style        Style // zero value renders unstyled; see DefaultStyle

	// ColorSeed seeds the per-frame token colour sequence. Equal seeds give
	// equal colours for equal buffers.
	ColorSeed uint64

	KeyMap       KeyMap
	ScrollPolicy ScrollPolicy

	// OnMove is called after every key or SetCursor call that moves the
	// cursor. No-op moves do not fire.
	OnMove func(MoveEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

// ScrollPolicy decides whether the viewport may scroll away from the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport without
	// moving the cursor. The next cursor move scrolls it back.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores mouse scrolling; only cursor moves
	// scroll the viewport.
	ScrollFollowCursorOnly
)
