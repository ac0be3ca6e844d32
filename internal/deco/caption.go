package deco

import (
	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/render"
	"github.com/glasskit/glassdeco/internal/theme"
)

// CaptionRect computes the caption rectangle and its text alignment. The
// left/right offsets are the button-group extents (or the bare side margin
// for an empty group), snapped to the pixel grid. The full-width policy
// centers the caption across the whole title bar for true visual centering,
// falling back to the edge the centered text would collide with; in the
// fallback case the caption is laid out in the constrained rect, not the
// full one.
func (d *Decoration) CaptionRect() (geo.Rect, render.Alignment) {
	if d.hideTitleBar() {
		return geo.Rect{}, render.AlignHCenter | render.AlignVCenter
	}

	scale := d.win.Scale()
	small := d.settings.SmallSpacing()
	width := d.win.Size().W

	leftOffset := titleBarSideMargin * small
	if g := d.leftButtons.Geometry(); !g.IsEmpty() {
		leftOffset = g.Right() + titleBarSideMargin*small
	}
	leftOffset = geo.SnapToPixelGrid(leftOffset, scale)

	rightOffset := titleBarSideMargin * small
	if g := d.rightButtons.Geometry(); !g.IsEmpty() {
		rightOffset = width - g.X + titleBarSideMargin*small
	}
	rightOffset = geo.SnapToPixelGrid(rightOffset, scale)

	yOffset := geo.SnapToPixelGrid(small*titleBarTopMargin, scale)
	maxRect := geo.Rect{
		X: leftOffset,
		Y: yOffset,
		W: width - leftOffset - rightOffset,
		H: d.captionHeight(),
	}

	switch d.cfg.TitleAlignment {
	case theme.AlignLeft:
		return maxRect, render.AlignVCenter | render.AlignLeft
	case theme.AlignRight:
		return maxRect, render.AlignVCenter | render.AlignRight
	case theme.AlignCenter:
		return maxRect, render.AlignHCenter | render.AlignVCenter
	default: // AlignCenterFullWidth
		fullRect := geo.Rect{X: 0, Y: yOffset, W: width, H: d.captionHeight()}

		// where the centered text would land
		textWidth := d.settings.TextWidth(d.win.Caption())
		boundingLeft := (width - textWidth) / 2
		boundingRight := boundingLeft + textWidth

		if boundingLeft < leftOffset {
			return maxRect, render.AlignVCenter | render.AlignLeft
		}
		if boundingRight > width-rightOffset {
			return maxRect, render.AlignVCenter | render.AlignRight
		}
		return fullRect, render.AlignHCenter | render.AlignVCenter
	}
}
