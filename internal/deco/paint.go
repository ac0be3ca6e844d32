package deco

import (
	"github.com/glasskit/glassdeco/internal/colors"
	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/render"
)

// Paint draws the title bar and its buttons. The pass holds no state of its
// own; it resolves colors from the current animation progress and hands
// everything to the renderer. A decoration torn down mid-callback paints
// nothing.
func (d *Decoration) Paint(p render.Painter, region geo.Rect) {
	if d.win == nil || d.closed || d.hideTitleBar() {
		return
	}

	captionRect, align := d.CaptionRect()
	sep, hasSep := d.OutlineColor()
	render.PaintTitleBar(p, render.TitleBarPaint{
		Path:         d.titleBarPath,
		Fill:         d.TitleBarColor(),
		HasSeparator: hasSep,
		Separator:    sep,
		Caption:      d.win.Caption(),
		CaptionRect:  captionRect,
		CaptionAlign: align,
		CaptionColor: d.FontColor(),
	})

	titleBar := d.TitleBarColor()
	font := d.FontColor()
	defaultFont := d.steadyFontColor()
	active := d.win.Active()

	for _, g := range []*ButtonGroup{d.leftButtons, d.rightButtons} {
		for _, b := range g.visible() {
			in := colors.ButtonInput{
				Kind:         b.kind,
				State:        b.state,
				WindowActive: active,
				Animating:    b.anim.Running(),
				Progress:     b.anim.Progress(),
				OutlineClose: d.cfg.OutlineCloseButton,
				TitleBar:     titleBar,
				Font:         font,
			}
			bg, hasBG := colors.ButtonBackground(in)
			render.DrawButton(p, render.ButtonPaint{
				Kind:          b.kind,
				State:         b.state,
				Rect:          b.IconRect(),
				Foreground:    colors.ButtonForeground(in),
				Background:    bg,
				HasBackground: hasBG,
				TitleBar:      titleBar,
				DefaultFont:   defaultFont,
			})
		}
	}
}
