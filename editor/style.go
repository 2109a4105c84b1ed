package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the viewer's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style

	// Tokens colours segments with the per-frame palette when true.
	Tokens bool
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tokens:        true,
	}
}

// PlainStyle renders without token colours.
func PlainStyle() Style {
	st := DefaultStyle()
	st.Tokens = false
	return st
}
