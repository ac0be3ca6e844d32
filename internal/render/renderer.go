package render

import (
	"image/color"

	"github.com/glasskit/glassdeco/internal/button"
	"github.com/glasskit/glassdeco/internal/geo"
)

// Glyphs are authored on a 40x40 logical canvas and scaled uniformly to the
// button's pixel size; the pen width scales inversely so small buttons do not
// end up with sub-pixel strokes.
const (
	glyphCanvas    = 40.0
	penWidthSymbol = 1.01
)

// TitleBarPaint is one frame's title-bar drawing input.
type TitleBarPaint struct {
	Path         geo.Path
	Fill         color.NRGBA
	HasSeparator bool
	Separator    color.NRGBA
	Caption      string
	CaptionRect  geo.Rect
	CaptionAlign Alignment
	CaptionColor color.NRGBA
}

// PaintTitleBar fills the title-bar outline, draws the optional separator
// along its bottom edge, and lays out the elided caption. Buttons are drawn
// separately by DrawButton.
func PaintTitleBar(p Painter, tb TitleBarPaint) {
	p.Save()
	p.FillPath(tb.Path, tb.Fill)

	if tb.HasSeparator {
		r := tb.Path.Rect
		p.FillRect(geo.Rect{X: r.X, Y: r.Bottom() - 1, W: r.W, H: 1}, tb.Separator)
	}

	// Caption baseline sits one unit below center.
	p.Translate(0, 1)
	p.DrawText(tb.CaptionRect, tb.CaptionAlign, tb.Caption, tb.CaptionColor)
	p.Restore()
}

// ButtonPaint is one frame's drawing input for a single button.
type ButtonPaint struct {
	Kind          button.Kind
	State         button.State
	Rect          geo.Rect // glyph rect: geometry minus hit padding
	Foreground    color.NRGBA
	Background    color.NRGBA
	HasBackground bool
	TitleBar      color.NRGBA
	// DefaultFont is the unblended host foreground; when the resolved
	// foreground equals it, the icon keeps its default palette instead of
	// caching a no-op override.
	DefaultFont color.NRGBA
}

// DrawButton paints one button. The menu button draws the window icon; a
// spacer draws nothing; every other kind strokes its vector glyph.
func DrawButton(p Painter, b ButtonPaint) {
	switch b.Kind {
	case button.Spacer:
		return
	case button.Menu:
		if b.Foreground == b.DefaultFont {
			p.DrawIcon(b.Rect, nil)
		} else {
			fg := b.Foreground
			p.DrawIcon(b.Rect, &fg)
		}
		return
	}

	p.Save()
	defer p.Restore()

	width := b.Rect.W
	if width <= 0 {
		return
	}
	p.Translate(b.Rect.X, b.Rect.Y)
	p.Scale(width/glyphCanvas, width/glyphCanvas)

	if b.HasBackground {
		p.FillEllipse(geo.Rect{X: 0, Y: 0, W: 36, H: 36}, b.Background)
	}

	pen := Pen{Color: b.Foreground, Width: penWidthSymbol * max(1, glyphCanvas/width)}
	drawGlyph(p, b, pen)
}

func drawGlyph(p Painter, b ButtonPaint, pen Pen) {
	fg := b.Foreground

	switch b.Kind {
	case button.Close, button.Maximize, button.Minimize:
		// Traffic-light buttons carry their meaning in the background chip;
		// no stroked mark.

	case button.OnAllDesktops:
		if b.State.Checked {
			p.FillEllipse(geo.Rect{X: 6, Y: 6, W: 24, H: 24}, fg)
			dot := b.TitleBar
			if b.HasBackground {
				dot = b.Background
			}
			p.FillEllipse(geo.Rect{X: 16, Y: 16, W: 4, H: 4}, dot)
		} else {
			p.FillPolygon([]geo.Point{{X: 13, Y: 13}, {X: 24, Y: 6}, {X: 30, Y: 12}, {X: 19, Y: 22}}, fg)
			p.StrokeLine(geo.Point{X: 11, Y: 15}, geo.Point{X: 21, Y: 25}, pen)
			p.StrokeLine(geo.Point{X: 24, Y: 12}, geo.Point{X: 9, Y: 27}, pen)
		}

	case button.Shade:
		p.StrokeLine(geo.Point{X: 8, Y: 11}, geo.Point{X: 28, Y: 11}, pen)
		if b.State.Checked {
			p.StrokePolyline([]geo.Point{{X: 8, Y: 16}, {X: 18, Y: 26}, {X: 28, Y: 16}}, pen)
		} else {
			p.StrokePolyline([]geo.Point{{X: 8, Y: 26}, {X: 18, Y: 16}, {X: 28, Y: 26}}, pen)
		}

	case button.KeepBelow:
		p.StrokePolyline([]geo.Point{{X: 8, Y: 10}, {X: 18, Y: 20}, {X: 28, Y: 10}}, pen)
		p.StrokePolyline([]geo.Point{{X: 8, Y: 18}, {X: 18, Y: 28}, {X: 28, Y: 18}}, pen)

	case button.KeepAbove:
		p.StrokePolyline([]geo.Point{{X: 8, Y: 18}, {X: 18, Y: 8}, {X: 28, Y: 18}}, pen)
		p.StrokePolyline([]geo.Point{{X: 8, Y: 26}, {X: 18, Y: 16}, {X: 28, Y: 26}}, pen)

	case button.ApplicationMenu:
		p.StrokeRect(geo.Rect{X: 7, Y: 9, W: 22, H: 2}, pen)
		p.StrokeRect(geo.Rect{X: 7, Y: 17, W: 22, H: 2}, pen)
		p.StrokeRect(geo.Rect{X: 7, Y: 25, W: 22, H: 2}, pen)

	case button.ContextHelp:
		p.StrokePath(VectorPath{
			{Kind: MoveTo, To: geo.Point{X: 10, Y: 12}},
			{Kind: ArcTo, Rect: geo.Rect{X: 10, Y: 7, W: 16, H: 10}, StartAngle: 180, SweepAngle: -180},
			{Kind: CubicTo, C1: geo.Point{X: 25, Y: 19}, C2: geo.Point{X: 18, Y: 15}, To: geo.Point{X: 18, Y: 23}},
		}, pen)
		p.StrokeRect(geo.Rect{X: 18, Y: 30, W: 1, H: 1}, pen)
	}
}
