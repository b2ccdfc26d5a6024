// Package rating implements a star rating control.
//
// A Control owns two numbers: the total number of stars (fixed at
// construction, 3 to 10) and the number of selected stars. Every change of the
// selection re-renders the star icons, refreshes the accessibility label and
// notifies observers. Pointer gestures are fed in through BeginTracking,
// ContinueTracking and EndTracking with control-local x coordinates.
//
// A Control is not safe for concurrent use; drive it from the UI loop.
package rating

import (
	"errors"
	"fmt"
	"math"

	"starrating/internal/layout"
)

const (
	MinTotalStars = 3
	MaxTotalStars = 10

	DefaultTotalStars    = 3
	DefaultSelectedStars = 1

	// DefaultSpacing is the gap between stars, in cells.
	DefaultSpacing = 1.0
)

// ErrTotalStarsOutOfRange is returned when a control is built with a total
// outside [MinTotalStars, MaxTotalStars].
var ErrTotalStarsOutOfRange = errors.New("total stars out of range")

// Observer is called after every render. It reads the new state from the control.
type Observer func(c *Control)

// Star is one icon child of the control.
type Star struct {
	Index int
	Icon  Icon
	Frame layout.Rect // relative to the control's bounds
}

type observerEntry struct {
	id int
	fn Observer
}

// Control is a star rating control.
type Control struct {
	root      *layout.Node
	container *layout.Node
	spacing   float64

	totalStars    int
	selectedStars int

	stars     []*Star
	label     string
	renders   int
	tracking  bool
	observers []observerEntry
	nextID    int
}

// Option configures a Control at construction.
type Option func(*Control)

// WithSpacing sets the gap between stars.
func WithSpacing(spacing float64) Option {
	return func(c *Control) { c.spacing = spacing }
}

// WithObserver registers fn before the first render, so it also sees the
// initial notification.
func WithObserver(fn Observer) Option {
	return func(c *Control) { c.OnChange(fn) }
}

// New creates a control with the given frame and star counts.
// totalStars must be within [MinTotalStars, MaxTotalStars]; selectedStars is
// clamped into [0, totalStars].
func New(frame layout.Rect, totalStars, selectedStars int, opts ...Option) (*Control, error) {
	if totalStars < MinTotalStars || totalStars > MaxTotalStars {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrTotalStarsOutOfRange, totalStars, MinTotalStars, MaxTotalStars)
	}
	c := &Control{
		root:       layout.NewNode("rating", frame),
		container:  layout.NewNode("stars", layout.Rect{}),
		spacing:    DefaultSpacing,
		totalStars: totalStars,
	}
	c.root.AddChild(c.container, layout.Top(0), layout.Bottom(0), layout.Leading(0), layout.Trailing(0))
	for _, opt := range opts {
		opt(c)
	}
	c.SetSelectedStars(selectedStars)
	return c, nil
}

// MustNew is like New but panics on an invalid total.
func MustNew(frame layout.Rect, totalStars, selectedStars int, opts ...Option) *Control {
	c, err := New(frame, totalStars, selectedStars, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewDefault creates a control with DefaultTotalStars and DefaultSelectedStars.
func NewDefault(frame layout.Rect, opts ...Option) *Control {
	return MustNew(frame, DefaultTotalStars, DefaultSelectedStars, opts...)
}

// TotalStars returns the maximum selectable rating.
func (c *Control) TotalStars() int {
	return c.totalStars
}

// SelectedStars returns the current rating.
func (c *Control) SelectedStars() int {
	return c.selectedStars
}

// SetSelectedStars clamps n into [0, TotalStars], stores it, renders and
// notifies observers. It renders even when n equals the current value.
func (c *Control) SetSelectedStars(n int) {
	c.selectedStars = max(0, min(n, c.totalStars))
	c.render()
}

// Frame returns the control's frame in its host's coordinates.
func (c *Control) Frame() layout.Rect {
	return c.root.Frame
}

// Bounds returns the control's frame moved to the origin.
func (c *Control) Bounds() layout.Rect {
	return c.root.Frame.Bounds()
}

// SetFrame moves or resizes the control and lays the stars out again.
// It does not render or notify observers.
func (c *Control) SetFrame(frame layout.Rect) {
	c.root.Frame = frame
	c.layoutStars()
}

// Stars returns a copy of the star icons in index order.
func (c *Control) Stars() []Star {
	out := make([]Star, len(c.stars))
	for i, s := range c.stars {
		out[i] = *s
	}
	return out
}

// Icons returns the icon of every star in index order.
func (c *Control) Icons() []Icon {
	out := make([]Icon, len(c.stars))
	for i, s := range c.stars {
		out[i] = s.Icon
	}
	return out
}

// AccessibilityLabel describes the current rating for screen readers.
func (c *Control) AccessibilityLabel() string {
	return c.label
}

// IsAccessibilityElement reports that the control is exposed as a single
// accessible element; the stars are not exposed individually.
func (c *Control) IsAccessibilityElement() bool {
	return true
}

// RenderCount returns how many times the control has rendered.
func (c *Control) RenderCount() int {
	return c.renders
}

// OnChange registers fn to be called after every render. Observers run in
// registration order. The returned func removes the registration.
func (c *Control) OnChange(fn Observer) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.observers = append(c.observers, observerEntry{id: id, fn: fn})
	return func() {
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// render reconciles the star icons and accessibility label with the model,
// then notifies every observer.
func (c *Control) render() {
	for i := 0; i < c.totalStars; i++ {
		if i >= len(c.stars) {
			c.stars = append(c.stars, &Star{Index: i})
		}
		c.stars[i].Icon = iconFor(i, c.selectedStars)
	}
	c.layoutStars()
	c.label = fmt.Sprintf("%d stars selected out of %d", c.selectedStars, c.totalStars)
	c.renders++

	observers := make([]observerEntry, len(c.observers))
	copy(observers, c.observers)
	for _, o := range observers {
		o.fn(c)
	}
}

// layoutStars pins the container to the control bounds and spreads the
// existing stars across it.
func (c *Control) layoutStars() {
	if err := c.root.Layout(); err != nil {
		c.container.Frame = layout.Rect{}
	}
	frames := layout.FillEqually(c.container.Frame, len(c.stars), c.spacing)
	for i, s := range c.stars {
		s.Frame = frames[i]
	}
}

// Tracking reports whether a gesture is in progress.
func (c *Control) Tracking() bool {
	return c.tracking
}

// BeginTracking starts a gesture at control-local x and applies the
// selection for it. It always accepts the gesture.
func (c *Control) BeginTracking(x float64) bool {
	c.tracking = true
	c.applyPosition(x)
	return true
}

// ContinueTracking clamps x into the control's width and applies the
// selection for it.
func (c *Control) ContinueTracking(x float64) bool {
	width := c.root.Frame.W
	if x < 0 {
		x = 0
	}
	if x > width {
		x = width
	}
	c.applyPosition(x)
	return true
}

// EndTracking finishes the current gesture.
func (c *Control) EndTracking() {
	c.tracking = false
}

func (c *Control) applyPosition(x float64) {
	n := SelectionAt(x, c.root.Frame.W, c.totalStars)
	if n != c.selectedStars {
		c.SetSelectedStars(n)
	}
}

// SelectionAt maps a horizontal position to a star count, rounding up to the
// last star reached: ceil(x / width * total), limited to [0, total].
// A non-positive width or a NaN position selects 0.
func SelectionAt(x, width float64, total int) int {
	if width <= 0 {
		return 0
	}
	n := math.Ceil(x / width * float64(total))
	if math.IsNaN(n) {
		return 0
	}
	return int(max(0, min(n, float64(total))))
}
