package cursor

import (
	"bytes"
	"fmt"

	"github.com/iw2rmb/caret/segment"
)

// Cursor is a position in a buffer. See the package doc for the meaning of
// X, Y and Z.
type Cursor struct {
	X int
	Y int
	Z int
}

// New returns the cursor at the start of a buffer.
func New() Cursor { return Cursor{} }

// At returns the cursor for byte offset z. z is clamped into the buffer and
// snapped down to a cluster boundary. An offset on the break that ends a
// non-empty line resolves to the last cluster of that line.
func At(buf []byte, z int) Cursor {
	z = clampInt(z, 0, len(buf))
	start := segment.LineStart(buf, z)
	c := Cursor{Y: bytes.Count(buf[:start], []byte{'\n'}), Z: start}
	for _, cl := range segment.Forward(buf, start) {
		if segment.IsLineBreak(cl) || c.Z+len(cl) > z {
			break
		}
		c = c.advance(cl)
	}
	return c.settleBackward(buf)
}

// End returns the one-past-end cursor of buf.
func End(buf []byte) Cursor {
	return At(buf, len(buf))
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Current returns the cluster at Z, or "" when the cursor is one past the
// end of buf.
func (c Cursor) Current(buf []byte) string {
	for _, cl := range segment.Forward(buf, c.Z) {
		return cl
	}
	return ""
}

// AtEnd reports whether c rests one past the end of buf.
func (c Cursor) AtEnd(buf []byte) bool {
	return c.Z >= len(buf)
}

// advance consumes cl, the cluster at Z.
func (c Cursor) advance(cl string) Cursor {
	c.Z += len(cl)
	if segment.IsLineBreak(cl) {
		c.Y++
		c.X = 0
		return c
	}
	c.X += len(cl)
	return c
}

// retreat consumes cl, the cluster that starts at off and ends at Z.
func (c Cursor) retreat(buf []byte, off int, cl string) Cursor {
	c.Z = off
	if segment.IsLineBreak(cl) {
		c.Y = max(c.Y-1, 0)
		c.X = lineWidthBefore(buf, off)
		return c
	}
	c.X -= len(cl)
	if c.X < 0 {
		c.X = lineWidthBefore(buf, off)
	}
	return c
}

// lineWidthBefore scans backward from z to the previous line break (or the
// buffer start) and returns the byte length covered.
func lineWidthBefore(buf []byte, z int) int {
	x := 0
	for _, cl := range segment.Backward(buf, z) {
		if segment.IsLineBreak(cl) {
			break
		}
		x += len(cl)
	}
	return x
}

func (c Cursor) onLineEnd(buf []byte) bool {
	return c.X > 0 && segment.IsLineBreak(c.Current(buf))
}

// settleForward applies the end-of-line rule after forward movement.
func (c Cursor) settleForward(buf []byte) Cursor {
	if c.onLineEnd(buf) {
		return c.advance(c.Current(buf))
	}
	return c
}

// settleBackward applies the end-of-line rule after backward movement.
func (c Cursor) settleBackward(buf []byte) Cursor {
	if !c.onLineEnd(buf) {
		return c
	}
	for off, cl := range segment.Backward(buf, c.Z) {
		return c.retreat(buf, off, cl)
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
