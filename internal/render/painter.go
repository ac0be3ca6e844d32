// Package render draws the title bar and its buttons through the host's 2D
// painting primitives. The pass is stateless: everything it needs arrives as
// arguments, and nothing is retained between frames.
package render

import (
	"image/color"

	"github.com/glasskit/glassdeco/internal/geo"
)

// Alignment positions text inside a rectangle.
type Alignment uint8

const (
	AlignLeft Alignment = 1 << iota
	AlignRight
	AlignHCenter
	AlignVCenter
)

// Pen describes a stroke. Strokes are round-capped and miter-joined, matching
// the glyph artwork.
type Pen struct {
	Color color.NRGBA
	Width float64
}

// PathElemKind tags one element of a VectorPath.
type PathElemKind int

const (
	MoveTo PathElemKind = iota
	LineTo
	ArcTo
	CubicTo
)

// PathElem is one segment of a stroked vector path. Rect and the angles are
// used by ArcTo (ellipse bounds, degrees, negative sweep clockwise); C1/C2
// by CubicTo.
type PathElem struct {
	Kind       PathElemKind
	To         geo.Point
	Rect       geo.Rect
	StartAngle float64
	SweepAngle float64
	C1         geo.Point
	C2         geo.Point
}

// VectorPath is an open path of stroke segments.
type VectorPath []PathElem

// Painter is the host-provided 2D painting surface for one decoration. All
// coordinates are in device-independent units; the painter applies the
// display scale.
type Painter interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	FillRect(r geo.Rect, c color.NRGBA)
	FillPath(p geo.Path, c color.NRGBA)
	FillEllipse(r geo.Rect, c color.NRGBA)
	FillPolygon(pts []geo.Point, c color.NRGBA)

	StrokeLine(a, b geo.Point, pen Pen)
	StrokePolyline(pts []geo.Point, pen Pen)
	StrokeRect(r geo.Rect, pen Pen)
	StrokePath(path VectorPath, pen Pen)

	// DrawText lays the string out in r with the title-bar font, eliding in
	// the middle when it does not fit, single line.
	DrawText(r geo.Rect, align Alignment, text string, c color.NRGBA)

	// DrawIcon paints the window icon into r. A non-nil palette overrides
	// the icon foreground; nil keeps the default icon palette.
	DrawIcon(r geo.Rect, palette *color.NRGBA)
}
