package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a region of the screen with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Positioned is implemented by views that must know their absolute terminal
// bounds, e.g. to hit-test mouse events.
type Positioned interface {
	SetBounds(x, y, w, h int)
}
