package deco

import (
	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/theme"
)

// borderSize maps the configured category to a concrete margin. The base unit
// follows the display scale: never thinner than one device pixel, never
// thinner than the snapped small spacing.
func (d *Decoration) borderSize(bottom bool, scale float64) float64 {
	baseSize := max(geo.PixelSize(scale), geo.SnapToPixelGrid(d.settings.SmallSpacing(), scale))

	switch d.cfg.BorderSize {
	case theme.BorderNone:
		return 0
	case theme.BorderNoSides:
		if bottom {
			return geo.SnapToPixelGrid(max(4, baseSize), scale)
		}
		return 0
	case theme.BorderNormal:
		return baseSize * 2
	case theme.BorderLarge:
		return baseSize * 3
	case theme.BorderVeryLarge:
		return baseSize * 4
	case theme.BorderHuge:
		return baseSize * 5
	case theme.BorderVeryHuge:
		return baseSize * 6
	case theme.BorderOversized:
		return baseSize * 10
	default: // BorderTiny
		if bottom {
			return geo.SnapToPixelGrid(max(4, baseSize), scale)
		}
		return baseSize
	}
}

// buttonSize maps the configured category to the square button edge, in
// multiples of the settings grid unit.
func (d *Decoration) buttonSize() float64 {
	baseSize := d.settings.GridUnit()
	switch d.cfg.ButtonSize {
	case theme.ButtonTiny:
		return baseSize
	case theme.ButtonSmall:
		return baseSize * 1.5
	case theme.ButtonLarge:
		return baseSize * 2.5
	case theme.ButtonVeryLarge:
		return baseSize * 3.5
	default: // ButtonDefault
		return baseSize * 2
	}
}

func (d *Decoration) captionHeight() float64 {
	if d.hideTitleBar() {
		return d.borders.Top
	}
	return d.buttonSize()
}

// recalculateBorders recomputes the four frame margins and the invisible
// resize-only margins. With the title bar hidden the frame becomes uniform:
// the top border equals the bottom one.
func (d *Decoration) recalculateBorders() {
	if d.win == nil {
		return
	}
	scale := d.win.NextScale()

	left := d.borderSize(false, scale)
	right := d.borderSize(false, scale)
	bottom := d.borderSize(true, scale)

	var top float64
	if d.hideTitleBar() {
		top = bottom
	} else {
		top = geo.SnapToPixelGrid(max(d.settings.FontHeight(), d.buttonSize()), scale)

		// padding below the caption row
		baseSize := d.settings.SmallSpacing() * 2
		top += geo.SnapToPixelGrid(baseSize*titleBarBottomMargin, scale)
	}

	borders := geo.Margins{Left: left, Top: top, Right: right, Bottom: bottom}
	if borders != d.borders {
		d.borders = borders
		d.updateTitleBar()
		d.relayoutDeferred()
	}

	// resize-only margins: borderless themes still need a grab area on the
	// edges that are not flush against a screen edge
	extSize := geo.SnapToPixelGrid(d.settings.LargeSpacing(), scale)
	var extSides, extBottom float64
	switch {
	case d.cfg.BorderSize == theme.BorderNone:
		if !d.win.MaximizedHorizontally() {
			extSides = extSize
		}
		if !d.win.MaximizedVertically() {
			extBottom = extSize
		}
	case d.cfg.BorderSize == theme.BorderNoSides && !d.win.MaximizedHorizontally():
		extSides = extSize
	}
	d.resizeOnly = geo.Margins{Left: extSides, Right: extSides, Bottom: extBottom}
}

// Borders returns the current frame margins.
func (d *Decoration) Borders() geo.Margins {
	return d.borders
}

// ResizeOnlyBorders returns the invisible resize margins outside the frame.
func (d *Decoration) ResizeOnlyBorders() geo.Margins {
	return d.resizeOnly
}
