package layout

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Bounds returns r moved to the origin.
func (r Rect) Bounds() Rect {
	return Rect{W: r.W, H: r.H}
}

// Contains reports whether (x, y) lies inside r. The max edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x < r.MaxX() && y >= r.MinY() && y < r.MaxY()
}

// FillEqually splits bounds horizontally into n frames of equal width
// separated by spacing. Frames never get a negative width.
func FillEqually(bounds Rect, n int, spacing float64) []Rect {
	if n <= 0 {
		return nil
	}
	w := (bounds.W - spacing*float64(n-1)) / float64(n)
	if w < 0 {
		w = 0
	}
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{
			X: bounds.X + float64(i)*(w+spacing),
			Y: bounds.Y,
			W: w,
			H: bounds.H,
		}
	}
	return out
}
