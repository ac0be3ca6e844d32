// Package geo provides the scalar and rectangle primitives used by the
// decoration engine. All values are in device-independent units; snapping
// helpers convert to and from the device pixel grid at a given scale.
package geo

import "math"

// PixelSize returns the size of one device pixel in device-independent units.
func PixelSize(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return 1 / scale
}

// SnapToPixelGrid rounds v to the nearest device pixel boundary at the given
// display scale, so that fractional scales (1.25, 1.5, ...) still land on
// whole device pixels.
func SnapToPixelGrid(v, scale float64) float64 {
	if scale <= 0 {
		return math.Round(v)
	}
	return math.Round(v*scale) / scale
}

// Point is a position in device-independent units.
type Point struct {
	X float64
	Y float64
}

// Translated returns the point moved by (dx, dy).
func (p Point) Translated(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width/height pair.
type Size struct {
	W float64
	H float64
}

// IsEmpty reports whether either dimension is not positive.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Margins are the four frame margins around a window.
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectFrom builds a rectangle from an origin and a size.
func RectFrom(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Adjusted grows or shrinks the rectangle edges. Negative dl/dt move the
// left/top edges outward, positive dr/db move the right/bottom edges outward.
func (r Rect) Adjusted(dl, dt, dr, db float64) Rect {
	return Rect{
		X: r.X + dl,
		Y: r.Y + dt,
		W: r.W - dl + dr,
		H: r.H - dt + db,
	}
}

// Translated returns the rectangle moved by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersect returns the overlapping region of two rectangles. An empty Rect
// is returned when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.Right(), o.Right())
	y2 := math.Min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}
