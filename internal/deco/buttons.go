package deco

import (
	"github.com/glasskit/glassdeco/internal/anim"
	"github.com/glasskit/glassdeco/internal/button"
	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
)

// Button is one title-bar button instance. Its geometry is assigned by the
// group layout; its hover animation runs independently of the window's
// activation animation.
type Button struct {
	deco *Decoration
	kind button.Kind

	state   button.State
	visible bool

	preferred geo.Size
	geometry  geo.Rect
	padding   geo.Margins
	edgeFlush bool

	anim *anim.Controller
	subs host.Subscriptions
}

func (d *Decoration) newButton(kind button.Kind) *Button {
	b := &Button{
		deco:    d,
		kind:    kind,
		visible: true,
		anim:    anim.NewController(d.clock),
	}
	b.anim.OnTick(func() { d.repaintRegion(b.geometry) })
	b.reconfigure()
	b.bindCapability()
	return b
}

// bindCapability ties visibility to the window capability backing the button
// kind, and re-lays the groups out when the capability flips.
func (b *Button) bindCapability() {
	w := b.deco.win
	bind := func(ev host.WindowEvent, capability func() bool) {
		b.visible = capability()
		b.subs.Add(w.Subscribe(ev, func() {
			b.setVisible(capability())
		}))
	}

	switch b.kind {
	case button.Close:
		bind(host.CloseableChanged, w.Closeable)
	case button.Maximize:
		bind(host.MaximizeableChanged, w.Maximizeable)
	case button.Minimize:
		bind(host.MinimizeableChanged, w.Minimizeable)
	case button.ContextHelp:
		bind(host.ContextHelpChanged, w.ProvidesContextHelp)
	case button.Shade:
		bind(host.ShadeableChanged, w.Shadeable)
	case button.Menu:
		b.subs.Add(w.Subscribe(host.IconChanged, func() {
			b.deco.repaintRegion(b.geometry)
		}))
	}
}

// reconfigure re-reads the preferred size and animation duration from the
// current theme. A spacer is half as wide as a regular button.
func (b *Button) reconfigure() {
	size := b.deco.buttonSize()
	if b.kind == button.Spacer {
		b.preferred = geo.Size{W: size * 0.5, H: size}
	} else {
		b.preferred = geo.Size{W: size, H: size}
	}
	b.anim.SetDuration(b.deco.cfg.AnimationsDuration())
}

func (b *Button) setVisible(visible bool) {
	if b.visible == visible {
		return
	}
	b.visible = visible
	b.deco.relayoutDeferred()
}

func (b *Button) close() {
	b.anim.Stop()
	b.subs.Close()
}

// Kind returns the button kind.
func (b *Button) Kind() button.Kind { return b.kind }

// Visible reports whether the button participates in layout and painting.
func (b *Button) Visible() bool { return b.visible }

// Geometry returns the hit rectangle in decoration coordinates, including
// any Fitts-law padding absorbed from the window edge.
func (b *Button) Geometry() geo.Rect { return b.geometry }

// IconRect returns the glyph rectangle: the hit rect minus padding.
func (b *Button) IconRect() geo.Rect {
	return b.geometry.Adjusted(b.padding.Left, b.padding.Top, -b.padding.Right, -b.padding.Bottom)
}

// State returns the current interaction state.
func (b *Button) State() button.State { return b.state }

// Contains reports whether p hits the button.
func (b *Button) Contains(p geo.Point) bool {
	return b.visible && b.geometry.Contains(p)
}

// SetHovered flips the hover state, retargeting the hover animation without
// discarding progress.
func (b *Button) SetHovered(hovered bool) {
	if b.state.Hovered == hovered {
		return
	}
	b.state.Hovered = hovered
	if b.deco.cfg.AnimationsEnabled {
		if hovered {
			b.anim.Start(anim.Forward)
		} else {
			b.anim.Start(anim.Backward)
		}
	} else {
		b.deco.repaintRegion(b.geometry)
	}
}

// SetPressed flips the pressed state.
func (b *Button) SetPressed(pressed bool) {
	if b.state.Pressed == pressed {
		return
	}
	b.state.Pressed = pressed
	b.deco.repaintRegion(b.geometry)
}

// SetChecked flips the checked state of a toggleable button; other kinds
// ignore it.
func (b *Button) SetChecked(checked bool) {
	if !b.kind.Toggleable() || b.state.Checked == checked {
		return
	}
	b.state.Checked = checked
	b.deco.repaintRegion(b.geometry)
}

// DefaultLeftButtons is the default left group order.
var DefaultLeftButtons = []button.Kind{button.Menu}

// DefaultRightButtons is the default right group order.
var DefaultRightButtons = []button.Kind{button.Minimize, button.Maximize, button.Close}

func (d *Decoration) createButtons() {
	d.SetButtons(DefaultLeftButtons, DefaultRightButtons)
}

// SetButtons replaces both button groups with the given orders and lays them
// out. The host's button-group configuration calls this on list changes.
func (d *Decoration) SetButtons(left, right []button.Kind) {
	if d.leftButtons != nil {
		d.leftButtons.close()
	}
	if d.rightButtons != nil {
		d.rightButtons.close()
	}
	d.leftButtons = newButtonGroup(d, left)
	d.rightButtons = newButtonGroup(d, right)
	d.updateButtonsGeometry()
}

// LeftButtons returns the left button group.
func (d *Decoration) LeftButtons() *ButtonGroup { return d.leftButtons }

// RightButtons returns the right button group.
func (d *Decoration) RightButtons() *ButtonGroup { return d.rightButtons }

// ButtonAt returns the visible button containing p, or nil.
func (d *Decoration) ButtonAt(p geo.Point) *Button {
	for _, g := range []*ButtonGroup{d.leftButtons, d.rightButtons} {
		for _, b := range g.buttons {
			if b.Contains(p) {
				return b
			}
		}
	}
	return nil
}
