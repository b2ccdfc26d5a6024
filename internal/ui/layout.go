package ui

import "starrating/internal/layout"

// Layout arranges panels.
type Layout interface {
	Panels() []Panel
}

// Stacked layout geometry, in cells.
const (
	stackTop    = 2 // below the title
	stackMargin = 4
	panelHeight = 3 // label, stars, accessibility text
	panelGap    = 1
)

// stackedAnchors returns the anchors for the i-th panel of a vertical stack:
// a fixed-height band inset from the terminal's left and right edges.
func stackedAnchors(i int) []layout.Anchor {
	top := float64(stackTop + i*(panelHeight+panelGap))
	return []layout.Anchor{
		layout.Top(top),
		layout.Bottom(top + panelHeight).Scaled(0),
		layout.Leading(stackMargin),
		layout.Trailing(-stackMargin),
	}
}
