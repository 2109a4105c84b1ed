package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// IsLineBreak reports whether cluster terminates a line.
// "\r\n" is a single extended grapheme cluster and counts as one break.
func IsLineBreak(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// Step returns the first grapheme cluster of b and the segmentation
// state to pass to the following call. state is -1 at a fresh boundary.
func Step(b []byte, state int) (cluster, rest []byte, newState int) {
	cluster, rest, _, newState = uniseg.Step(b, state)
	return cluster, rest, newState
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// CellWidth returns the terminal cell width of cluster when drawn at
// visualCol. Tabs advance to the next multiple of tabWidth.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}
