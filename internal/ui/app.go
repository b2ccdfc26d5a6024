package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"starrating/internal/config"
	"starrating/internal/layout"
	"starrating/internal/rating"
	"starrating/internal/trace"
)

// AppModel is the demo host: a vertical stack of rating panels.
type AppModel struct {
	Stack []Panel
	// OnChange is called for every RatingChangedMsg, after the model records it.
	OnChange func(RatingChangedMsg)
	// Verbose logs gesture routing.
	Verbose bool

	LastChange *RatingChangedMsg

	width, height int
	capture       string // panel ID tracking a gesture
	keys          keyMap
	help          help.Model
}

// Ensure AppModel arranges panels.
var _ Layout = (*AppModel)(nil)

// NewAppModel builds one rating panel per configured rating. Each control
// also reports its renders to exporter; a nil exporter records nothing.
func NewAppModel(cfg *config.Config, exporter *trace.OTLPExporter) (*AppModel, error) {
	m := &AppModel{
		Verbose: cfg.Log.Verbose,
		keys:    newKeyMap(),
		help:    newHelpModel(),
	}
	for i, rc := range cfg.Ratings {
		c, err := rating.New(layout.Rect{}, rc.Total, rc.Selected,
			rating.WithSpacing(cfg.Spacing),
			rating.WithObserver(exporter.Recorder(rc.ID)),
		)
		if err != nil {
			return nil, fmt.Errorf("rating %q: %w", rc.ID, err)
		}
		label := rc.Label
		if label == "" {
			label = rc.ID
		}
		m.Stack = append(m.Stack, AnchoredPanel(rc.ID, NewRatingView(rc.ID, label, c), stackedAnchors(i)...))
	}
	return m, nil
}

// Panels implements Layout.
func (m *AppModel) Panels() []Panel {
	return m.Stack
}

// Rating returns the rating view of the panel with the given ID.
func (m *AppModel) Rating(id string) (*RatingView, bool) {
	for _, p := range m.Stack {
		if p.ID == id {
			rv, ok := p.View.(*RatingView)
			return rv, ok
		}
	}
	return nil, false
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range a.Stack {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	case tea.MouseMsg:
		return a, a.routeMouse(msg)
	case RatingChangedMsg:
		a.LastChange = &msg
		if a.OnChange != nil {
			a.OnChange(msg)
		}
		return a, nil
	}
	return a, nil
}

func (a *AppModel) resize(width, height int) {
	a.width, a.height = width, height
	a.help.Width = width
	for _, p := range a.Stack {
		if pv, ok := p.View.(Positioned); ok {
			pv.SetBounds(p.Bounds(width, height))
		}
	}
}

// routeMouse sends a press to the panel under the pointer and every later
// event of the same gesture to that panel, wherever the pointer is.
// A press while a gesture is captured means its release was lost: the stale
// gesture is ended and the press is hit-tested like any other.
func (a *AppModel) routeMouse(msg tea.MouseMsg) tea.Cmd {
	if a.capture != "" && msg.Action == tea.MouseActionPress {
		if rv, ok := a.Rating(a.capture); ok {
			rv.Control.EndTracking()
		}
		a.capture = ""
	}
	if a.capture != "" {
		id := a.capture
		if msg.Action == tea.MouseActionRelease {
			a.capture = ""
		}
		return a.updatePanel(id, msg)
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	for _, p := range a.Stack {
		if !p.Contains(a.width, a.height, msg.X, msg.Y) {
			continue
		}
		cmd := a.updatePanel(p.ID, msg)
		if rv, ok := p.View.(*RatingView); ok && rv.Control.Tracking() {
			a.capture = p.ID
			if a.Verbose {
				log.Printf("gesture start: panel=%s x=%d y=%d", p.ID, msg.X, msg.Y)
			}
		}
		return cmd
	}
	return nil
}

func (a *AppModel) updatePanel(id string, msg tea.Msg) tea.Cmd {
	for i := range a.Stack {
		if a.Stack[i].ID == id {
			v, cmd := a.Stack[i].View.Update(msg)
			a.Stack[i].View = v
			return cmd
		}
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	screen := make([]string, a.height)
	screen[0] = Styles.Title.Render("Star rating")

	for _, p := range a.Stack {
		x, y, _, _ := p.Bounds(a.width, a.height)
		pad := strings.Repeat(" ", x)
		for i, line := range strings.Split(p.View.View(), "\n") {
			if row := y + i; row >= 0 && row < len(screen) {
				screen[row] = pad + line
			}
		}
	}

	footer := a.help.View(a.keys)
	if a.LastChange != nil {
		footer = Styles.Status.Render(fmt.Sprintf("%s: %d/%d", a.LastChange.ID, a.LastChange.Selected, a.LastChange.Total)) + "  " + footer
	}
	screen[len(screen)-1] = footer
	return strings.Join(screen, "\n")
}
