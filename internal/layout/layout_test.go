package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChild_ActivatesOneConstraintPerAnchor(t *testing.T) {
	parent := NewNode("parent", Rect{W: 300, H: 50})
	child := NewNode("child", Rect{})

	cs := parent.AddChild(child, Top(0), Bottom(0), Leading(0), Trailing(0))

	require.Len(t, cs, 4)
	for i, edge := range []Edge{EdgeTop, EdgeBottom, EdgeLeading, EdgeTrailing} {
		assert.Equal(t, edge, cs[i].Edge)
		assert.Same(t, child, cs[i].Item)
		assert.Same(t, parent, cs[i].RelatedTo)
		assert.Equal(t, 1.0, cs[i].Multiplier)
		assert.True(t, cs[i].Active)
	}
	assert.Same(t, parent, child.Parent())
	assert.Equal(t, []*Node{child}, parent.Children())
}

func TestLayout_PinsChildToParentBounds(t *testing.T) {
	parent := NewNode("control", Rect{X: 10, Y: 250, W: 300, H: 50})
	child := NewNode("stars", Rect{})
	parent.AddChild(child, Top(0), Bottom(0), Leading(0), Trailing(0))

	require.NoError(t, parent.Layout())
	assert.Equal(t, Rect{W: 300, H: 50}, child.Frame)
}

func TestLayout_ConstantsAndMultipliers(t *testing.T) {
	parent := NewNode("root", Rect{W: 100, H: 40})
	child := NewNode("inset", Rect{})
	parent.AddChild(child, Top(2), Bottom(-2), Leading(4), Trailing(0).Scaled(0.5))

	require.NoError(t, parent.Layout())
	assert.Equal(t, Rect{X: 4, Y: 2, W: 46, H: 36}, child.Frame)
}

func TestLayout_UnconstrainedEdgesKeepFrame(t *testing.T) {
	parent := NewNode("root", Rect{W: 100, H: 40})
	child := NewNode("child", Rect{X: 5, Y: 5, W: 10, H: 3})
	parent.AddChild(child, Leading(0), Trailing(0))

	require.NoError(t, parent.Layout())
	assert.Equal(t, Rect{X: 0, Y: 5, W: 100, H: 3}, child.Frame)
}

func TestLayout_Nested(t *testing.T) {
	root := NewNode("root", Rect{W: 80, H: 24})
	mid := NewNode("mid", Rect{})
	leaf := NewNode("leaf", Rect{})
	root.AddChild(mid, Top(1), Bottom(-1), Leading(1), Trailing(-1))
	mid.AddChild(leaf, Top(0), Bottom(0), Leading(0), Trailing(0))

	require.NoError(t, root.Layout())
	assert.Equal(t, Rect{X: 1, Y: 1, W: 78, H: 22}, mid.Frame)
	assert.Equal(t, Rect{W: 78, H: 22}, leaf.Frame)
}

func TestLayout_NegativeSizeIsUnsatisfiable(t *testing.T) {
	parent := NewNode("root", Rect{W: 10, H: 10})
	child := NewNode("child", Rect{})
	parent.AddChild(child, Leading(8), Trailing(-8))

	err := parent.Layout()
	require.ErrorIs(t, err, ErrUnsatisfiable)
	assert.Contains(t, err.Error(), `"child"`)
}

func TestLayout_InactiveConstraintIgnored(t *testing.T) {
	parent := NewNode("root", Rect{W: 10, H: 10})
	child := NewNode("child", Rect{W: 3, H: 3})
	cs := parent.AddChild(child, Leading(2))
	cs[0].Active = false

	require.NoError(t, parent.Layout())
	assert.Equal(t, Rect{W: 3, H: 3}, child.Frame)
}

func TestAddChild_Reparents(t *testing.T) {
	a := NewNode("a", Rect{W: 10, H: 10})
	b := NewNode("b", Rect{W: 20, H: 20})
	child := NewNode("child", Rect{})
	a.AddChild(child)
	b.AddChild(child, Top(0), Bottom(0), Leading(0), Trailing(0))

	assert.Empty(t, a.Children())
	assert.Same(t, b, child.Parent())
	require.NoError(t, b.Layout())
	assert.Equal(t, Rect{W: 20, H: 20}, child.Frame)
}

func TestFillEqually(t *testing.T) {
	frames := FillEqually(Rect{W: 29, H: 1}, 5, 1)
	require.Len(t, frames, 5)
	for i, f := range frames {
		assert.InDelta(t, 5.0, f.W, 1e-9)
		assert.InDelta(t, float64(i)*6, f.X, 1e-9)
		assert.Equal(t, 1.0, f.H)
	}

	assert.Nil(t, FillEqually(Rect{W: 10}, 0, 1))
	for _, f := range FillEqually(Rect{W: 2}, 5, 1) {
		assert.Equal(t, 0.0, f.W)
	}
}

func TestBounds(t *testing.T) {
	bounds := Bounds(Top(2), Bottom(5).Scaled(0), Leading(4), Trailing(-4))
	x, y, w, h := bounds(80, 24)
	assert.Equal(t, []int{4, 2, 72, 3}, []int{x, y, w, h})

	x, y, w, h = bounds(6, 24)
	assert.Equal(t, []int{0, 0, 0, 0}, []int{x, y, w, h})
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 2, H: 1}
	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2.5, 1.5))
	assert.False(t, r.Contains(3, 1))
	assert.False(t, r.Contains(0.5, 1))
}
