// Package editor provides a read-only Bubble Tea viewer that moves a cursor
// over a UTF-8 buffer.
//
// The package is responsible for key handling, viewport behavior,
// grapheme-aware rendering, and host integration hooks (move events and
// viewport state). Navigation itself lives in the cursor package.
package editor
