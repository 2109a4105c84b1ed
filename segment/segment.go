package segment

import (
	"bytes"
	"iter"

	"github.com/iw2rmb/caret/internal/grapheme"
)

// IsLineBreak reports whether cluster is a line-break cluster.
func IsLineBreak(cluster string) bool {
	return grapheme.IsLineBreak(cluster)
}

// Forward yields grapheme clusters of buf in ascending order, starting at
// byte offset from. from must lie on a cluster boundary.
func Forward(buf []byte, from int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if from < 0 || from > len(buf) {
			return
		}
		rest := buf[from:]
		off := from
		state := -1
		for len(rest) > 0 {
			var c []byte
			c, rest, state = grapheme.Step(rest, state)
			if !yield(off, string(c)) {
				return
			}
			off += len(c)
		}
	}
}

type span struct {
	off, n int
}

// Backward yields grapheme clusters of buf that end at or before upto, in
// descending order. upto must lie on a cluster boundary.
//
// A '\n' byte always ends a cluster, so the buffer is re-segmented forward
// one line at a time, starting right after the previous '\n'.
func Backward(buf []byte, upto int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if upto < 0 || upto > len(buf) {
			return
		}
		var spans []span
		end := upto
		for end > 0 {
			start := bytes.LastIndexByte(buf[:end-1], '\n') + 1

			spans = spans[:0]
			rest := buf[start:end]
			off := start
			state := -1
			for len(rest) > 0 {
				var c []byte
				c, rest, state = grapheme.Step(rest, state)
				spans = append(spans, span{off: off, n: len(c)})
				off += len(c)
			}

			for i := len(spans) - 1; i >= 0; i-- {
				s := spans[i]
				if !yield(s.off, string(buf[s.off:s.off+s.n])) {
					return
				}
			}
			end = start
		}
	}
}

// Lines yields line blocks of buf in ascending order, starting at from.
// A block is either a single line-break cluster or a maximal run of
// non-line-break clusters.
func Lines(buf []byte, from int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		runStart := -1
		runEnd := -1
		for off, c := range Forward(buf, from) {
			if !IsLineBreak(c) {
				if runStart < 0 {
					runStart = off
				}
				runEnd = off + len(c)
				continue
			}
			if runStart >= 0 {
				if !yield(runStart, string(buf[runStart:runEnd])) {
					return
				}
				runStart = -1
			}
			if !yield(off, c) {
				return
			}
		}
		if runStart >= 0 {
			yield(runStart, string(buf[runStart:runEnd]))
		}
	}
}

// LinesBackward yields the line blocks of buf that end at or before upto,
// in descending order.
func LinesBackward(buf []byte, upto int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		runStart := -1
		runEnd := -1
		for off, c := range Backward(buf, upto) {
			if !IsLineBreak(c) {
				if runEnd < 0 {
					runEnd = off + len(c)
				}
				runStart = off
				continue
			}
			if runEnd >= 0 {
				if !yield(runStart, string(buf[runStart:runEnd])) {
					return
				}
				runEnd = -1
			}
			if !yield(off, c) {
				return
			}
		}
		if runEnd >= 0 {
			yield(runStart, string(buf[runStart:runEnd]))
		}
	}
}

// LineStart returns the byte offset of the first cluster of the line
// containing offset at. at is clamped into [0, len(buf)].
func LineStart(buf []byte, at int) int {
	at = clamp(at, 0, len(buf))
	return bytes.LastIndexByte(buf[:at], '\n') + 1
}

// LineEnd returns the byte offset of the line-break cluster terminating
// the line that contains at, or len(buf) on the last line.
func LineEnd(buf []byte, at int) int {
	for off, c := range Forward(buf, LineStart(buf, at)) {
		if IsLineBreak(c) {
			return off
		}
	}
	return len(buf)
}

// LineLen returns the byte length of the line containing at, excluding
// its line-break cluster.
func LineLen(buf []byte, at int) int {
	return LineEnd(buf, at) - LineStart(buf, at)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
