package reveal

// Rect is an axis-aligned box in document pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Area returns the rectangle area; degenerate rectangles have zero area.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlapping region and whether the rectangles touch at all.
// Edge-adjacent rectangles intersect with an empty region, mirroring how browsers report
// zero-area targets sitting on the viewport edge.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	left := max(r.Left(), o.Left())
	top := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Margin offsets each edge of the root rectangle, CSS rootMargin style. Positive values
// grow the root, negative values shrink it.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Expand applies the margin to r.
func (m Margin) Expand(r Rect) Rect {
	return Rect{
		X:      r.X - m.Left,
		Y:      r.Y - m.Top,
		Width:  r.Width + m.Left + m.Right,
		Height: r.Height + m.Top + m.Bottom,
	}
}

// Ratio reports the fraction of target visible inside root, and whether they intersect.
func Ratio(target, root Rect) (float64, bool) {
	overlap, ok := target.Intersect(root)
	if !ok {
		return 0, false
	}
	area := target.Area()
	if area == 0 {
		// zero-area targets count as fully visible once they touch the root
		return 1, true
	}
	return overlap.Area() / area, true
}
