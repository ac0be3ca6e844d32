// Package colors resolves the concrete title-bar and button colors from the
// host color scheme, the interaction state, and the animation progress. Every
// function is pure; the caller snapshots the scheme once per paint.
package colors

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/glasskit/glassdeco/internal/host"
)

// Scheme is the snapshot of host palette entries the resolver needs.
type Scheme struct {
	ActiveTitleBar     color.NRGBA
	InactiveTitleBar   color.NRGBA
	ActiveForeground   color.NRGBA
	InactiveForeground color.NRGBA
	Highlight          color.NRGBA
}

// SchemeFrom snapshots the relevant palette entries of a window.
func SchemeFrom(win host.Window) Scheme {
	return Scheme{
		ActiveTitleBar:     win.Color(host.Active, host.RoleTitleBar),
		InactiveTitleBar:   win.Color(host.Inactive, host.RoleTitleBar),
		ActiveForeground:   win.Color(host.Active, host.RoleForeground),
		InactiveForeground: win.Color(host.Inactive, host.RoleForeground),
		Highlight:          win.Color(host.Active, host.RoleHighlight),
	}
}

// Mix blends a toward b by bias in linear RGB, interpolating alpha
// separately.
func Mix(a, b color.NRGBA, bias float64) color.NRGBA {
	if bias <= 0 {
		return a
	}
	if bias >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendRgb(cb, bias).Clamped()
	return color.NRGBA{
		R: uint8(math.Round(m.R * 255)),
		G: uint8(math.Round(m.G * 255)),
		B: uint8(math.Round(m.B * 255)),
		A: uint8(math.Round(float64(a.A) + (float64(b.A)-float64(a.A))*bias)),
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func scaleAlpha(c color.NRGBA, factor float64) color.NRGBA {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	c.A = uint8(math.Round(float64(c.A) * factor))
	return c
}

// TitleBar resolves the title-bar fill color: the inactive color when the
// title bar is hidden, a cross-fade while the activation animation runs, and
// the plain active/inactive color otherwise.
func TitleBar(s Scheme, active, animating bool, progress float64, hidden bool) color.NRGBA {
	switch {
	case hidden:
		return s.InactiveTitleBar
	case animating:
		return Mix(s.InactiveTitleBar, s.ActiveTitleBar, progress)
	case active:
		return s.ActiveTitleBar
	default:
		return s.InactiveTitleBar
	}
}

// Font resolves the caption foreground, cross-faded by the activation
// animation while it runs.
func Font(s Scheme, active, animating bool, progress float64) color.NRGBA {
	if animating {
		return Mix(s.InactiveForeground, s.ActiveForeground, progress)
	}
	if active {
		return s.ActiveForeground
	}
	return s.InactiveForeground
}

// Outline resolves the optional title-bar separator color. The second return
// is false when no separator should be drawn: separator disabled, or the
// window inactive with no animation running.
func Outline(s Scheme, drawSeparator, active, animating bool, progress float64) (color.NRGBA, bool) {
	if !drawSeparator {
		return color.NRGBA{}, false
	}
	if animating {
		return scaleAlpha(s.Highlight, progress), true
	}
	if active {
		return s.Highlight, true
	}
	return color.NRGBA{}, false
}
