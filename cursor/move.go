package cursor

import (
	"math"

	"github.com/iw2rmb/caret/segment"
)

// ForwardByGraphemes advances up to n clusters. It stops early at the end
// of buf. A consumed line break moves to column 0 of the next line.
func (c Cursor) ForwardByGraphemes(buf []byte, n int) Cursor {
	if n <= 0 {
		return c
	}
	steps := 0
	for _, cl := range segment.Forward(buf, c.Z) {
		c = c.advance(cl)
		steps++
		if steps == n {
			break
		}
	}
	return c.settleForward(buf)
}

// BackwardByGraphemes moves back up to n clusters, stopping at the start of
// buf. A consumed line break counts as one step; X is recomputed as the
// width of the line being entered before the walk may stop.
func (c Cursor) BackwardByGraphemes(buf []byte, n int) Cursor {
	if n <= 0 {
		return c
	}
	steps := 0
	for off, cl := range segment.Backward(buf, c.Z) {
		c = c.retreat(buf, off, cl)
		steps++
		if steps == n {
			break
		}
	}
	return c.settleBackward(buf)
}

// ForwardByLines moves down n lines, clamped at the last line, keeping the
// column where the target line is long enough.
func (c Cursor) ForwardByLines(buf []byte, n int) Cursor {
	if n <= 0 {
		return c
	}
	return c.down(buf, n).sticky(buf, c.X)
}

// BackwardByLines moves up n lines, clamped at the first line, keeping the
// column where the target line is long enough.
func (c Cursor) BackwardByLines(buf []byte, n int) Cursor {
	if n <= 0 {
		return c
	}
	return c.up(buf, n).sticky(buf, c.X)
}

// Seek moves to column x of line y. y is clamped to the lines of buf and x
// to the resting columns of the target line.
func (c Cursor) Seek(buf []byte, x, y int) Cursor {
	x = max(x, 0)
	y = max(y, 0)

	var target Cursor
	switch {
	case y > c.Y:
		target = c.down(buf, y-c.Y)
	case y < c.Y:
		target = c.up(buf, c.Y-y)
	default:
		target = c.home(buf)
	}
	return target.sticky(buf, x)
}

// LineStart moves to the first cluster of the current line.
func (c Cursor) LineStart(buf []byte) Cursor {
	return c.home(buf)
}

// LineEnd moves to the last cluster of the current line. A blank line
// stays at its start.
func (c Cursor) LineEnd(buf []byte) Cursor {
	return c.home(buf).sticky(buf, math.MaxInt)
}

func (c Cursor) home(buf []byte) Cursor {
	return Cursor{Y: c.Y, Z: segment.LineStart(buf, c.Z)}
}

// down walks line blocks forward from Z, consuming up to n line breaks, and
// returns the start of the line reached. On the last line it returns the
// start of the current line.
func (c Cursor) down(buf []byte, n int) Cursor {
	target := c.home(buf)
	breaks := 0
	for off, block := range segment.Lines(buf, c.Z) {
		if !segment.IsLineBreak(block) {
			continue
		}
		breaks++
		target = Cursor{Y: c.Y + breaks, Z: off + len(block)}
		if breaks == n {
			break
		}
	}
	return target
}

// up walks line blocks backward from the start of the current line,
// consuming up to n line breaks, and returns the start of the line reached.
func (c Cursor) up(buf []byte, n int) Cursor {
	target := c.home(buf)
	breaks := 0
	for off, block := range segment.LinesBackward(buf, target.Z) {
		if !segment.IsLineBreak(block) {
			continue
		}
		breaks++
		target = Cursor{Y: max(c.Y-breaks, 0), Z: segment.LineStart(buf, off)}
		if breaks == n {
			break
		}
	}
	return target
}

// sticky steps forward from the start of a line while the column stays
// within goal, stopping before the line break. The end of buf ends the last
// line the same way, so a non-empty line always clamps to its last cluster.
func (c Cursor) sticky(buf []byte, goal int) Cursor {
	for _, cl := range segment.Forward(buf, c.Z) {
		if segment.IsLineBreak(cl) || c.X+len(cl) > goal {
			break
		}
		c = c.advance(cl)
	}
	if c.X > 0 && c.AtEnd(buf) {
		for off, cl := range segment.Backward(buf, c.Z) {
			return c.retreat(buf, off, cl)
		}
	}
	return c.settleBackward(buf)
}
