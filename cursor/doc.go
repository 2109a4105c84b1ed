// Package cursor implements grapheme-aware cursor navigation over an
// immutable UTF-8 buffer.
//
// A Cursor is a value (X, Y, Z): Z is the byte offset into the buffer, Y the
// number of line breaks before Z and X the byte length of the clusters
// between the start of the line and Z. Z is authoritative; X and Y are
// cached views of it. Every method borrows the buffer for the duration of
// the call and returns a new Cursor.
//
// End-of-line rule: a cursor never rests on a line-break cluster while
// X > 0. Moving forward onto such a break takes one more forward step to the
// start of the next line; moving backward onto it takes one more backward
// step to the last cluster of the line. That extra step is not counted. A
// line break with X == 0 is a blank line and is a valid resting place.
//
// Movement past either end of the buffer clamps. Z == len(buf) is the
// one-past-end position; forward movement from it is a no-op.
package cursor
