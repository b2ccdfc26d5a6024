package ui

import (
	"github.com/charmbracelet/lipgloss"

	"starrating/internal/rating"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for filled stars
	ColorMuted     = "241" // Gray - for dimmed text, hints, empty stars
	ColorText      = "252" // Light gray - for normal text
)

// Glyphs for the two star icons.
const (
	GlyphFilled = "★"
	GlyphEmpty  = "☆"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title      lipgloss.Style // Bold accent color - for the app title
	Label      lipgloss.Style // Rating labels
	StarFilled lipgloss.Style
	StarEmpty  lipgloss.Style
	Muted      lipgloss.Style // Accessibility text
	Status     lipgloss.Style // Last change
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	StarFilled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	StarEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// Glyph resolves an icon to the character drawn for it.
func Glyph(icon rating.Icon) string {
	if icon == rating.IconFilled {
		return GlyphFilled
	}
	return GlyphEmpty
}

// renderStar draws the glyph for icon in its style.
func renderStar(icon rating.Icon) string {
	style := Styles.StarEmpty
	if icon == rating.IconFilled {
		style = Styles.StarFilled
	}
	return style.Render(Glyph(icon))
}
