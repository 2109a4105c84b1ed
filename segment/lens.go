package segment

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/rivo/uniseg"
)

// ErrUnknownLens is returned by ParseLens for unrecognized names.
var ErrUnknownLens = errors.New("unknown lens")

// Lens selects the segmentation used to split a buffer into tokens.
type Lens int

const (
	LensGraphemes Lens = iota
	LensWords
	LensSentences
)

func (l Lens) String() string {
	switch l {
	case LensGraphemes:
		return "graphemes"
	case LensWords:
		return "words"
	case LensSentences:
		return "sentences"
	default:
		return fmt.Sprintf("Lens(%d)", int(l))
	}
}

// Next returns the lens that follows l, wrapping around.
func (l Lens) Next() Lens {
	switch l {
	case LensGraphemes:
		return LensWords
	case LensWords:
		return LensSentences
	default:
		return LensGraphemes
	}
}

// ParseLens parses a lens name as produced by Lens.String.
func ParseLens(s string) (Lens, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "graphemes", "grapheme", "":
		return LensGraphemes, nil
	case "words", "word":
		return LensWords, nil
	case "sentences", "sentence":
		return LensSentences, nil
	default:
		return LensGraphemes, fmt.Errorf("%w: %q", ErrUnknownLens, s)
	}
}

// Segments yields the tokens of buf under lens, in ascending order.
func Segments(buf []byte, lens Lens) iter.Seq2[int, string] {
	switch lens {
	case LensWords:
		return Words(buf, 0)
	case LensSentences:
		return Sentences(buf, 0)
	default:
		return Forward(buf, 0)
	}
}

// Words yields word-bound segments (UAX #29) starting at from.
func Words(buf []byte, from int) iter.Seq2[int, string] {
	return bounded(buf, from, uniseg.FirstWord)
}

// Sentences yields sentence-bound segments (UAX #29) starting at from.
func Sentences(buf []byte, from int) iter.Seq2[int, string] {
	return bounded(buf, from, uniseg.FirstSentence)
}

type firstFunc func(b []byte, state int) (segment, rest []byte, newState int)

func bounded(buf []byte, from int, first firstFunc) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if from < 0 || from > len(buf) {
			return
		}
		rest := buf[from:]
		off := from
		state := -1
		for len(rest) > 0 {
			var s []byte
			s, rest, state = first(rest, state)
			if !yield(off, string(s)) {
				return
			}
			off += len(s)
		}
	}
}
