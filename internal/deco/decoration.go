// Package deco implements the window decoration engine: border and title-bar
// geometry, button layout, the activation/hover animation wiring, and the
// paint pass. One Decoration exists per decorated window; everything runs on
// the host event thread.
package deco

import (
	"image/color"

	"github.com/rs/zerolog"

	"github.com/glasskit/glassdeco/internal/anim"
	"github.com/glasskit/glassdeco/internal/colors"
	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
	"github.com/glasskit/glassdeco/internal/theme"
)

// Title-bar metrics, in units of the host small spacing.
const (
	titleBarTopMargin     = 2
	titleBarBottomMargin  = 2
	titleBarSideMargin    = 2
	titleBarButtonSpacing = 2
)

// Shadows are rendered in plain black, tinted only by layer opacity.
var shadowColor = color.NRGBA{A: 0xff}

// Decoration computes and paints the frame around one window.
type Decoration struct {
	win      host.Window
	settings host.Settings
	provider theme.Provider
	loop     host.EventLoop
	clock    host.Clock
	log      zerolog.Logger

	cfg  *theme.Config
	anim *anim.Controller

	borders    geo.Margins
	resizeOnly geo.Margins

	titleRect    geo.Rect
	titleBarPath geo.Path
	windowPath   geo.Path
	inputRect    geo.Rect

	leftButtons  *ButtonGroup
	rightButtons *ButtonGroup

	subs           host.Subscriptions
	relayoutQueued bool
	closed         bool
}

// New creates a decoration bound to a window. Call Init before use and Close
// at teardown.
func New(win host.Window, settings host.Settings, provider theme.Provider,
	loop host.EventLoop, clock host.Clock, log zerolog.Logger) *Decoration {
	return &Decoration{
		win:      win,
		settings: settings,
		provider: provider,
		loop:     loop,
		clock:    clock,
		log:      log,
	}
}

// Init fetches the theme, wires every change-notification source, creates the
// default button groups, and computes the initial geometry.
func (d *Decoration) Init() {
	if d.win == nil {
		return
	}

	d.anim = anim.NewController(d.clock)
	d.anim.OnTick(func() { d.repaint() })
	if d.win.Active() {
		d.anim.SnapTo(anim.Forward)
	}

	d.reconfigure()
	d.updateTitleBar()

	s := d.settings
	d.subs.Add(s.Subscribe(host.BorderSizeChanged, d.recalculateBorders))
	// a change in font or spacing can change the borders
	d.subs.Add(s.Subscribe(host.FontChanged, d.recalculateBorders))
	d.subs.Add(s.Subscribe(host.SpacingChanged, d.recalculateBorders))
	d.subs.Add(s.Subscribe(host.SpacingChanged, d.relayoutDeferred))
	d.subs.Add(s.Subscribe(host.Reconfigured, func() {
		d.reconfigure()
		d.relayoutDeferred()
	}))

	w := d.win
	d.subs.Add(w.Subscribe(host.AdjacentEdgesChanged, d.recalculateBorders))
	d.subs.Add(w.Subscribe(host.MaximizedHorizontallyChanged, d.recalculateBorders))
	d.subs.Add(w.Subscribe(host.MaximizedVerticallyChanged, d.recalculateBorders))
	d.subs.Add(w.Subscribe(host.ShadedChanged, d.recalculateBorders))
	d.subs.Add(w.Subscribe(host.CaptionChanged, func() {
		d.repaintRegion(d.titleRect)
	}))

	d.subs.Add(w.Subscribe(host.ActiveChanged, d.updateAnimationState))
	d.subs.Add(w.Subscribe(host.AdjacentEdgesChanged, d.updateTitleBar))
	d.subs.Add(w.Subscribe(host.SizeChanged, d.updateTitleBar))
	d.subs.Add(w.Subscribe(host.MaximizedChanged, d.updateTitleBar))
	d.subs.Add(w.Subscribe(host.MaximizedHorizontallyChanged, d.updateTitleBar))
	d.subs.Add(w.Subscribe(host.MaximizedVerticallyChanged, d.updateTitleBar))
	d.subs.Add(w.Subscribe(host.ShadedChanged, d.updateTitleBar))

	d.subs.Add(w.Subscribe(host.SizeChanged, d.updateButtonsGeometry))
	d.subs.Add(w.Subscribe(host.MaximizedChanged, d.updateButtonsGeometry))
	d.subs.Add(w.Subscribe(host.AdjacentEdgesChanged, d.updateButtonsGeometry))
	d.subs.Add(w.Subscribe(host.ShadedChanged, d.updateButtonsGeometry))

	d.createButtons()

	d.log.Debug().Str("caption", w.Caption()).Msg("decoration initialized")
}

// Close releases every host registration. The decoration must not be used
// afterwards.
func (d *Decoration) Close() {
	if d.closed {
		return
	}
	d.closed = true
	if d.anim != nil {
		d.anim.Stop()
	}
	if d.leftButtons != nil {
		d.leftButtons.close()
	}
	if d.rightButtons != nil {
		d.rightButtons.close()
	}
	d.subs.Close()
	d.log.Debug().Msg("decoration closed")
}

// Config returns the current theme snapshot.
func (d *Decoration) Config() *theme.Config {
	return d.cfg
}

// reconfigure re-fetches the theme snapshot wholesale and propagates the new
// parameters. The process-wide shadow cache is dropped as a unit so every
// decoration re-resolves against the new configuration.
func (d *Decoration) reconfigure() {
	d.cfg = theme.Normalize(d.provider.Config())
	theme.InvalidateShadowCache()

	d.anim.SetDuration(d.cfg.AnimationsDuration())
	if d.leftButtons != nil {
		d.leftButtons.reconfigure()
	}
	if d.rightButtons != nil {
		d.rightButtons.reconfigure()
	}

	d.recalculateBorders()
	d.log.Debug().
		Str("border_size", string(d.cfg.BorderSize)).
		Str("button_size", string(d.cfg.ButtonSize)).
		Msg("decoration reconfigured")
}

// Shadow resolves the composite shadow for this window's theme and scale from
// the shared cache.
func (d *Decoration) Shadow() *theme.ResolvedShadow {
	return theme.ShadowFor(d.cfg.ShadowSize, shadowColor, d.win.Scale())
}

// updateAnimationState retargets the activation animation toward the
// window's current activity. With animations disabled it just repaints.
func (d *Decoration) updateAnimationState() {
	if d.win == nil {
		return
	}
	if d.cfg.AnimationsEnabled {
		if d.win.Active() {
			d.anim.Start(anim.Forward)
		} else {
			d.anim.Start(anim.Backward)
		}
		if !d.anim.Running() {
			// already at the target endpoint; still reflect the flip
			d.repaint()
		}
	} else {
		d.repaint()
	}
}

func (d *Decoration) hideTitleBar() bool {
	return d.cfg.HideTitleBar && !d.win.Shaded()
}

func (d *Decoration) leftEdge() bool {
	return d.win.MaximizedHorizontally() || d.win.AdjacentEdges().Has(host.EdgeLeft)
}

func (d *Decoration) rightEdge() bool {
	return d.win.MaximizedHorizontally() || d.win.AdjacentEdges().Has(host.EdgeRight)
}

func (d *Decoration) topEdge() bool {
	return d.win.MaximizedVertically() || d.win.AdjacentEdges().Has(host.EdgeTop)
}

func (d *Decoration) repaint() {
	if d.win == nil || d.closed {
		return
	}
	d.win.Repaint(geo.Rect{})
}

func (d *Decoration) repaintRegion(r geo.Rect) {
	if d.win == nil || d.closed {
		return
	}
	d.win.Repaint(r)
}

// TitleBarColor resolves the title-bar fill, cross-faded by the activation
// animation while it runs.
func (d *Decoration) TitleBarColor() color.NRGBA {
	return colors.TitleBar(colors.SchemeFrom(d.win), d.win.Active(),
		d.anim.Running(), d.anim.Progress(), d.hideTitleBar())
}

// FontColor resolves the caption foreground.
func (d *Decoration) FontColor() color.NRGBA {
	return colors.Font(colors.SchemeFrom(d.win), d.win.Active(),
		d.anim.Running(), d.anim.Progress())
}

// OutlineColor resolves the optional title-bar separator color; ok is false
// when no separator is drawn.
func (d *Decoration) OutlineColor() (color.NRGBA, bool) {
	return colors.Outline(colors.SchemeFrom(d.win), d.cfg.DrawTitleBarSeparator,
		d.win.Active(), d.anim.Running(), d.anim.Progress())
}

// steadyFontColor is the unblended host foreground, used to detect a no-op
// icon palette override.
func (d *Decoration) steadyFontColor() color.NRGBA {
	return colors.Font(colors.SchemeFrom(d.win), d.win.Active(), false, 0)
}
