package geo

// Path is a window or title-bar outline: a rectangle with an independent
// radius per corner. It is consumed by the host for clipping and hit-testing,
// so it stays a value description rather than a rasterized shape.
type Path struct {
	Rect        Rect
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

// RectPath builds a path with square corners.
func RectPath(r Rect) Path {
	return Path{Rect: r}
}

// RoundedRectPath builds a path with the same radius on all four corners.
func RoundedRectPath(r Rect, radius float64) Path {
	if radius < 0 {
		radius = 0
	}
	return Path{
		Rect:        r,
		TopLeft:     radius,
		TopRight:    radius,
		BottomLeft:  radius,
		BottomRight: radius,
	}
}

// IsRounded reports whether any corner carries a radius.
func (p Path) IsRounded() bool {
	return p.TopLeft > 0 || p.TopRight > 0 || p.BottomLeft > 0 || p.BottomRight > 0
}

// Equal reports exact equality of rectangle and corner radii.
func (p Path) Equal(o Path) bool {
	return p == o
}

// Intersected clips the path against clip. A corner keeps its radius only if
// the corner survives the clip in place; a corner that was pushed outside the
// clip rectangle comes back square. This is how an outline inflated past a
// screen edge loses its rounding against that edge.
func (p Path) Intersected(clip Rect) Path {
	r := p.Rect.Intersect(clip)
	out := Path{Rect: r}
	if r.IsEmpty() {
		return out
	}
	if p.Rect.X == r.X && p.Rect.Y == r.Y {
		out.TopLeft = p.TopLeft
	}
	if p.Rect.Right() == r.Right() && p.Rect.Y == r.Y {
		out.TopRight = p.TopRight
	}
	if p.Rect.X == r.X && p.Rect.Bottom() == r.Bottom() {
		out.BottomLeft = p.BottomLeft
	}
	if p.Rect.Right() == r.Right() && p.Rect.Bottom() == r.Bottom() {
		out.BottomRight = p.BottomRight
	}
	return out
}
