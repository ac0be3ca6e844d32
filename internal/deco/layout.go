package deco

import (
	"github.com/glasskit/glassdeco/internal/button"
	"github.com/glasskit/glassdeco/internal/geo"
)

// ButtonGroup is an ordered run of buttons on one side of the title bar.
type ButtonGroup struct {
	deco    *Decoration
	buttons []*Button
	pos     geo.Point
	spacing float64
}

func newButtonGroup(d *Decoration, kinds []button.Kind) *ButtonGroup {
	g := &ButtonGroup{deco: d}
	for _, k := range kinds {
		g.buttons = append(g.buttons, d.newButton(k))
	}
	return g
}

// Buttons returns the group's buttons in order, hidden ones included.
func (g *ButtonGroup) Buttons() []*Button {
	return g.buttons
}

func (g *ButtonGroup) visible() []*Button {
	var out []*Button
	for _, b := range g.buttons {
		if b.visible {
			out = append(out, b)
		}
	}
	return out
}

// Geometry returns the union rect of the visible buttons.
func (g *ButtonGroup) Geometry() geo.Rect {
	vis := g.visible()
	if len(vis) == 0 {
		return geo.Rect{}
	}
	r := vis[0].geometry
	for _, b := range vis[1:] {
		right := max(r.Right(), b.geometry.Right())
		bottom := max(r.Bottom(), b.geometry.Bottom())
		r.X = min(r.X, b.geometry.X)
		r.Y = min(r.Y, b.geometry.Y)
		r.W = right - r.X
		r.H = bottom - r.Y
	}
	return r
}

func (g *ButtonGroup) reconfigure() {
	for _, b := range g.buttons {
		b.reconfigure()
	}
}

func (g *ButtonGroup) close() {
	for _, b := range g.buttons {
		b.close()
	}
}

// row assigns absolute positions to the visible buttons, left to right from
// the group origin.
func (g *ButtonGroup) row() {
	x := g.pos.X
	for _, b := range g.visible() {
		b.geometry.X = x
		b.geometry.Y = g.pos.Y
		x += b.geometry.W + g.spacing
	}
}

// relayoutDeferred coalesces re-layout triggers: however many arrive within
// one event-processing turn, a single layout pass runs at the next idle point
// and observes the final state of all of them.
func (d *Decoration) relayoutDeferred() {
	if d.relayoutQueued || d.closed {
		return
	}
	d.relayoutQueued = true
	d.loop.OnIdle(func() {
		d.relayoutQueued = false
		if d.closed {
			return
		}
		d.updateButtonsGeometry()
	})
}

// updateButtonsGeometry sizes and positions both groups. A window flush
// against the top screen edge grows every button's hit region up to the edge;
// a window flush against a side edge lets the outermost button absorb the
// side margin, so the clickable region reaches the true window corner while
// the drawn glyph keeps its padding.
func (d *Decoration) updateButtonsGeometry() {
	if d.win == nil || d.closed || d.leftButtons == nil || d.rightButtons == nil {
		return
	}
	s := d.settings
	size := d.win.Size()

	verticalOffset := 0.0
	if d.topEdge() {
		verticalOffset = s.SmallSpacing() * titleBarTopMargin
	}
	for _, g := range []*ButtonGroup{d.leftButtons, d.rightButtons} {
		for _, b := range g.buttons {
			b.geometry = geo.Rect{W: b.preferred.W, H: b.preferred.H + verticalOffset}
			b.padding = geo.Margins{Top: verticalOffset}
			b.edgeFlush = false
		}
	}

	vPadding := 0.0
	if !d.topEdge() {
		vPadding = s.SmallSpacing() * titleBarTopMargin
	}
	hPadding := s.SmallSpacing() * titleBarSideMargin

	if vis := d.leftButtons.visible(); len(vis) > 0 {
		d.leftButtons.spacing = s.SmallSpacing() * titleBarButtonSpacing
		if d.leftEdge() {
			first := vis[0]
			first.geometry.W += hPadding
			first.padding.Left = hPadding
			first.edgeFlush = true
			d.leftButtons.pos = geo.Point{X: 0, Y: vPadding}
		} else {
			d.leftButtons.pos = geo.Point{X: hPadding + d.borders.Left, Y: vPadding}
		}
		d.leftButtons.row()
	}

	if vis := d.rightButtons.visible(); len(vis) > 0 {
		d.rightButtons.spacing = s.SmallSpacing() * titleBarButtonSpacing
		if d.rightEdge() {
			last := vis[len(vis)-1]
			last.geometry.W += hPadding
			last.padding.Right = hPadding
			last.edgeFlush = true
			d.rightButtons.pos = geo.Point{X: size.W - d.rightButtons.rowWidth(), Y: vPadding}
		} else {
			d.rightButtons.pos = geo.Point{
				X: size.W - d.rightButtons.rowWidth() - hPadding - d.borders.Right,
				Y: vPadding,
			}
		}
		d.rightButtons.row()
	}

	d.repaint()
}

// rowWidth is the laid-out width of the visible buttons including spacing.
func (g *ButtonGroup) rowWidth() float64 {
	vis := g.visible()
	if len(vis) == 0 {
		return 0
	}
	w := 0.0
	for _, b := range vis {
		w += b.geometry.W
	}
	return w + g.spacing*float64(len(vis)-1)
}
