package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"starrating/internal/layout"
	"starrating/internal/rating"
	"starrating/internal/ui/textutil"
)

// RatingChangedMsg is sent after every render of a rating control.
type RatingChangedMsg struct {
	ID       string
	Selected int
	Total    int
	Label    string // accessibility description
}

// RatingView draws a rating control in three rows (label, stars,
// accessibility text) and feeds it mouse gestures.
type RatingView struct {
	ID      string
	Label   string
	Control *rating.Control

	x, y, w, h int
	pending    []RatingChangedMsg
}

// Ensure RatingView implements View and Positioned.
var (
	_ View       = (*RatingView)(nil)
	_ Positioned = (*RatingView)(nil)
)

// NewRatingView wraps c. Renders of c become RatingChangedMsg commands
// returned from Update.
func NewRatingView(id, label string, c *rating.Control) *RatingView {
	v := &RatingView{ID: id, Label: label, Control: c}
	c.OnChange(v.queue)
	return v
}

func (v *RatingView) queue(c *rating.Control) {
	v.pending = append(v.pending, RatingChangedMsg{
		ID:       v.ID,
		Selected: c.SelectedStars(),
		Total:    c.TotalStars(),
		Label:    c.AccessibilityLabel(),
	})
}

// flush turns queued notifications into a command, preserving their order.
func (v *RatingView) flush() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(v.pending))
	for i, msg := range v.pending {
		cmds[i] = func() tea.Msg { return msg }
	}
	v.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// SetBounds places the view; the control occupies the middle row.
func (v *RatingView) SetBounds(x, y, w, h int) {
	v.x, v.y, v.w, v.h = x, y, w, h
	v.Control.SetFrame(layout.Rect{X: float64(x), Y: float64(y + 1), W: float64(w), H: 1})
}

// SetSelectedStars sets the rating from the host.
func (v *RatingView) SetSelectedStars(n int) tea.Cmd {
	v.Control.SetSelectedStars(n)
	return v.flush()
}

// Init implements View.
func (v *RatingView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *RatingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		_, cmd := v.HandleMouse(msg)
		return v, cmd
	}
	return v, nil
}

// HandleMouse processes mouse input and returns any resulting command.
// Returns true if the event was handled (consumed), false to propagate.
//
// A left press inside the control starts a gesture; motion continues it
// (clamped by the control) and release ends it. Positions use the centre
// of the reported cell.
func (v *RatingView) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	frame := v.Control.Frame()
	cx, cy := float64(msg.X)+0.5, float64(msg.Y)+0.5
	x := cx - frame.X

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !frame.Contains(cx, cy) {
			return false, nil
		}
		v.Control.BeginTracking(x)
	case tea.MouseActionMotion:
		if !v.Control.Tracking() {
			return false, nil
		}
		v.Control.ContinueTracking(x)
	case tea.MouseActionRelease:
		if !v.Control.Tracking() {
			return false, nil
		}
		v.Control.EndTracking()
	default:
		return false, nil
	}
	return true, v.flush()
}

// View implements View.
func (v *RatingView) View() string {
	if v.w <= 0 {
		return ""
	}
	lines := []string{
		Styles.Label.Render(textutil.Fit(v.Label, v.w)),
		v.starRow(),
		Styles.Muted.Render(textutil.Fit(v.Control.AccessibilityLabel(), v.w)),
	}
	return strings.Join(lines, "\n")
}

// starRow draws each star's glyph centred in its frame.
func (v *RatingView) starRow() string {
	cells := make([]string, v.w)
	for i := range cells {
		cells[i] = " "
	}
	for _, s := range v.Control.Stars() {
		col := int(s.Frame.X + s.Frame.W/2)
		if col >= 0 && col < len(cells) {
			cells[col] = renderStar(s.Icon)
		}
	}
	return strings.Join(cells, "")
}
