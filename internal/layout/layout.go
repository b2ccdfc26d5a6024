// Package layout attaches child nodes to a parent with edge constraints.
//
// A Node is a rectangle in a retained tree. AddChild pins a child to its
// parent with a list of anchors (top/bottom/leading/trailing, each with a
// multiplier and a constant) and activates one Constraint per anchor.
// Layout resolves active constraints top-down.
package layout

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is returned by Layout when constraints produce a negative size.
var ErrUnsatisfiable = errors.New("unsatisfiable constraints")

// Edge identifies one side of a rectangle.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// Anchor describes one edge alignment: child.Edge = Multiplier*parent.Edge + Constant.
type Anchor struct {
	Edge       Edge
	Multiplier float64
	Constant   float64
}

// Top aligns the child's top edge with the parent's, offset by c.
func Top(c float64) Anchor { return Anchor{Edge: EdgeTop, Multiplier: 1, Constant: c} }

// Bottom aligns the child's bottom edge with the parent's, offset by c.
func Bottom(c float64) Anchor { return Anchor{Edge: EdgeBottom, Multiplier: 1, Constant: c} }

// Leading aligns the child's leading edge with the parent's, offset by c.
func Leading(c float64) Anchor { return Anchor{Edge: EdgeLeading, Multiplier: 1, Constant: c} }

// Trailing aligns the child's trailing edge with the parent's, offset by c.
func Trailing(c float64) Anchor { return Anchor{Edge: EdgeTrailing, Multiplier: 1, Constant: c} }

// Scaled returns a copy of a with multiplier m.
func (a Anchor) Scaled(m float64) Anchor {
	a.Multiplier = m
	return a
}

// Constraint relates an edge of Item to the same edge of RelatedTo.
type Constraint struct {
	Item       *Node
	RelatedTo  *Node
	Edge       Edge
	Multiplier float64
	Constant   float64
	Active     bool
}

// Node is a rectangle in the layout tree.
// Frame is expressed in the parent's coordinate space.
type Node struct {
	Name  string
	Frame Rect

	parent      *Node
	children    []*Node
	constraints []*Constraint
}

// NewNode creates a detached node with the given frame.
func NewNode(name string, frame Rect) *Node {
	return &Node{Name: name, Frame: frame}
}

// Parent returns the node's parent, or nil if detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild attaches child to n and activates one constraint per anchor,
// relating each child edge to the same edge of n.
// A child that already has a parent is moved.
func (n *Node) AddChild(child *Node, anchors ...Anchor) []*Constraint {
	if child.parent != nil && child.parent != n {
		child.parent.removeChild(child)
	}
	if child.parent != n {
		child.parent = n
		n.children = append(n.children, child)
	}
	return child.Activate(n, anchors...)
}

// Activate creates and activates constraints from n to relativeTo.
// A nil relativeTo means the node's current parent.
func (n *Node) Activate(relativeTo *Node, anchors ...Anchor) []*Constraint {
	if relativeTo == nil {
		relativeTo = n.parent
	}
	out := make([]*Constraint, 0, len(anchors))
	for _, a := range anchors {
		c := &Constraint{
			Item:       n,
			RelatedTo:  relativeTo,
			Edge:       a.Edge,
			Multiplier: a.Multiplier,
			Constant:   a.Constant,
			Active:     true,
		}
		n.constraints = append(n.constraints, c)
		out = append(out, c)
	}
	return out
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Layout resolves the active constraints of every descendant of n.
func (n *Node) Layout() error {
	for _, child := range n.children {
		frame, err := resolve(child.Frame, n.Frame.Bounds(), child.activeConstraints(n))
		if err != nil {
			return fmt.Errorf("layout %q: %w", child.Name, err)
		}
		child.Frame = frame
		if err := child.Layout(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) activeConstraints(parent *Node) []Anchor {
	var anchors []Anchor
	for _, c := range n.constraints {
		if c.Active && c.RelatedTo == parent {
			anchors = append(anchors, Anchor{Edge: c.Edge, Multiplier: c.Multiplier, Constant: c.Constant})
		}
	}
	return anchors
}

// resolve applies anchors against parent bounds, keeping unconstrained edges of current.
func resolve(current, parent Rect, anchors []Anchor) (Rect, error) {
	minX, maxX := current.MinX(), current.MaxX()
	minY, maxY := current.MinY(), current.MaxY()
	for _, a := range anchors {
		switch a.Edge {
		case EdgeTop:
			minY = a.Multiplier*parent.MinY() + a.Constant
		case EdgeBottom:
			maxY = a.Multiplier*parent.MaxY() + a.Constant
		case EdgeLeading:
			minX = a.Multiplier*parent.MinX() + a.Constant
		case EdgeTrailing:
			maxX = a.Multiplier*parent.MaxX() + a.Constant
		}
	}
	if maxX < minX || maxY < minY {
		return current, fmt.Errorf("%w: %gx%g", ErrUnsatisfiable, maxX-minX, maxY-minY)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, nil
}

// Bounds returns a function resolving anchors against a width x height parent,
// rounded to whole terminal cells. Unconstrained edges default to the parent's.
func Bounds(anchors ...Anchor) func(width, height int) (x, y, w, h int) {
	return func(width, height int) (int, int, int, int) {
		parent := Rect{W: float64(width), H: float64(height)}
		r, err := resolve(parent, parent, anchors)
		if err != nil {
			return 0, 0, 0, 0
		}
		return int(r.X), int(r.Y), int(r.W), int(r.H)
	}
}
