package ui

import "starrating/internal/layout"

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// AnchoredPanel returns a panel whose bounds are pinned to the terminal edges
// by anchors. Edges without an anchor follow the terminal's.
func AnchoredPanel(id string, v View, anchors ...layout.Anchor) Panel {
	return Panel{ID: id, View: v, Bounds: layout.Bounds(anchors...)}
}

// Contains reports whether the cell (x, y) lies in the panel for a terminal
// of the given size.
func (p Panel) Contains(width, height, x, y int) bool {
	px, py, pw, ph := p.Bounds(width, height)
	return x >= px && x < px+pw && y >= py && y < py+ph
}
