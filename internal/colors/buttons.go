package colors

import (
	"image/color"

	"github.com/glasskit/glassdeco/internal/button"
)

// Semantic button accents (traffic-light palette) and the neutral background
// used on inactive windows.
var (
	accentClose    = color.NRGBA{R: 0xff, A: 0xff}
	accentMinimize = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	accentMaximize = color.NRGBA{G: 0xff, A: 0xff}
	neutralGray    = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
)

const (
	restingAlpha = 128
	hoveredAlpha = 192
	pressedMix   = 0.3
)

// ButtonInput carries everything the per-button color rules depend on. Font
// and TitleBar are the already-resolved window-level colors, so the button
// rules stay in lockstep with the activation cross-fade.
type ButtonInput struct {
	Kind         button.Kind
	State        button.State
	WindowActive bool
	Animating    bool
	Progress     float64
	OutlineClose bool
	TitleBar     color.NRGBA
	Font         color.NRGBA
}

// ButtonForeground resolves the glyph color. Precedence: pressed, outlined
// close button, checked toggle, hover animation, steady hover, rest.
func ButtonForeground(in ButtonInput) color.NRGBA {
	switch {
	case in.State.Pressed:
		return in.TitleBar
	case in.Kind == button.Close && in.OutlineClose:
		return in.TitleBar
	case in.Kind.Toggleable() && in.State.Checked:
		return in.TitleBar
	case in.Animating:
		return Mix(in.Font, in.TitleBar, in.Progress)
	case in.State.Hovered:
		return in.TitleBar
	default:
		return in.Font
	}
}

// ButtonBackground resolves the circle behind the glyph. The second return
// is false when the button has no background. Hover brightening applies only
// while the window is active; background windows keep a flat neutral chip so
// they do not advertise affordances.
func ButtonBackground(in ButtonInput) (color.NRGBA, bool) {
	if !in.WindowActive {
		switch in.Kind {
		case button.Close, button.Minimize, button.Maximize:
			return WithAlpha(neutralGray, restingAlpha), true
		}
		return color.NRGBA{}, false
	}

	if in.State.Pressed {
		switch in.Kind {
		case button.Close:
			return accentClose, true
		case button.Minimize:
			return accentMinimize, true
		case button.Maximize:
			return accentMaximize, true
		default:
			return Mix(in.TitleBar, in.Font, pressedMix), true
		}
	}

	alpha := uint8(restingAlpha)
	if in.State.Hovered {
		alpha = hoveredAlpha
	}
	switch in.Kind {
	case button.Close:
		return WithAlpha(accentClose, alpha), true
	case button.Minimize:
		return WithAlpha(accentMinimize, alpha), true
	case button.Maximize:
		return WithAlpha(accentMaximize, alpha), true
	}
	return color.NRGBA{}, false
}
