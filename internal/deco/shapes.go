package deco

import "github.com/glasskit/glassdeco/internal/geo"

// updateTitleBar recomputes the draggable title-bar input rect. It is inset
// by the side/top margins so the frame edges above and beside it stay
// available for resizing, except when maximized or flush against the top
// screen edge.
func (d *Decoration) updateTitleBar() {
	if d.win == nil {
		return
	}
	small := d.settings.SmallSpacing()
	maximized := d.win.Maximized()
	size := d.win.Size()

	width := size.W
	x := 0.0
	if !maximized {
		width = size.W - 2*small*titleBarSideMargin
		x = small * titleBarSideMargin
	}
	height := d.borders.Top
	y := 0.0
	if !maximized && !d.topEdge() {
		height = d.borders.Top - small*titleBarTopMargin
		y = small * titleBarTopMargin
	}
	d.inputRect = geo.Rect{X: x, Y: y, W: width, H: height}

	d.updateShapes(false)
}

// updateShapes rebuilds the title-bar and window outline paths. Precedence:
// maximized or no alpha channel means plain rectangles; a shaded window is
// just its rounded title bar; otherwise the title-bar outline is inflated
// past the screen-adjacent edges and clipped back, so no corner rounds
// against a shared screen edge, and the window outline rounds the full rect.
func (d *Decoration) updateShapes(windowShapeOnly bool) {
	size := d.win.Size()
	radius := d.cfg.CornerRadius
	alpha := d.settings.AlphaChannelSupported()
	shaded := d.win.Shaded()

	if !windowShapeOnly || shaded {
		d.titleRect = geo.Rect{X: 0, Y: 0, W: size.W, H: d.borders.Top}
		switch {
		case d.win.Maximized() || !alpha:
			d.titleBarPath = geo.RectPath(d.titleRect)
		case shaded:
			d.titleBarPath = geo.RoundedRectPath(d.titleRect, radius)
		default:
			var dl, dt, dr float64
			if d.leftEdge() {
				dl = -radius
			}
			if d.topEdge() {
				dt = -radius
			}
			if d.rightEdge() {
				dr = radius
			}
			// inflated so the clip squares off the corners that must not
			// show rounding; the bottom always extends into the window body
			inflated := geo.RoundedRectPath(d.titleRect.Adjusted(dl, dt, dr, radius), radius)
			d.titleBarPath = inflated.Intersected(d.titleRect)
		}
	}

	fullRect := geo.Rect{X: 0, Y: 0, W: size.W, H: size.H}
	if shaded {
		d.windowPath = d.titleBarPath
	} else if alpha && !d.win.Maximized() {
		d.windowPath = geo.RoundedRectPath(fullRect, radius)
	} else {
		d.windowPath = geo.RectPath(fullRect)
	}
}

// TitleBarRect returns the title-bar rectangle.
func (d *Decoration) TitleBarRect() geo.Rect {
	return d.titleRect
}

// InputRect returns the draggable title-bar region.
func (d *Decoration) InputRect() geo.Rect {
	return d.inputRect
}

// TitleBarPath returns the title-bar outline used for clipping and
// hit-testing.
func (d *Decoration) TitleBarPath() geo.Path {
	return d.titleBarPath
}

// WindowPath returns the window outline. For a shaded window it is the
// title-bar outline itself.
func (d *Decoration) WindowPath() geo.Path {
	return d.windowPath
}
