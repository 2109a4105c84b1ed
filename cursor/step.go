package cursor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownUnit      = errors.New("unknown unit")
)

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "forward" or "backward".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "fwd", "f":
		return Forward, nil
	case "backward", "back", "b":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

type Unit int

const (
	Grapheme Unit = iota
	Line
)

func (u Unit) String() string {
	switch u {
	case Grapheme:
		return "grapheme"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit parses "grapheme" or "line".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grapheme", "graphemes", "g":
		return Grapheme, nil
	case "line", "lines", "l":
		return Line, nil
	default:
		return Grapheme, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Request is a navigation input. Negative counts are treated as zero.
type Request struct {
	Direction Direction
	Unit      Unit
	Count     int
}

func (r Request) String() string {
	return fmt.Sprintf("%s %d %s", r.Direction, r.Count, r.Unit)
}

// Step applies r to c. Unknown directions or units leave c unchanged.
func (c Cursor) Step(buf []byte, r Request) Cursor {
	switch {
	case r.Direction == Forward && r.Unit == Grapheme:
		return c.ForwardByGraphemes(buf, r.Count)
	case r.Direction == Backward && r.Unit == Grapheme:
		return c.BackwardByGraphemes(buf, r.Count)
	case r.Direction == Forward && r.Unit == Line:
		return c.ForwardByLines(buf, r.Count)
	case r.Direction == Backward && r.Unit == Line:
		return c.BackwardByLines(buf, r.Count)
	default:
		return c
	}
}
