package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glasskit/glassdeco/internal/button"
)

var scheme = Scheme{
	ActiveTitleBar:     color.NRGBA{R: 0x20, G: 0x25, B: 0x2b, A: 0xff},
	InactiveTitleBar:   color.NRGBA{R: 0x31, G: 0x36, B: 0x3b, A: 0xff},
	ActiveForeground:   color.NRGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff},
	InactiveForeground: color.NRGBA{R: 0xa0, G: 0xa4, B: 0xa8, A: 0xff},
	Highlight:          color.NRGBA{R: 0x3d, G: 0xae, B: 0xe9, A: 0xff},
}

func TestMixEndpoints(t *testing.T) {
	a := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	b := color.NRGBA{R: 200, G: 150, B: 100, A: 255}
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))

	mid := Mix(a, b, 0.5)
	assert.Equal(t, uint8(105), mid.R)
	assert.Equal(t, uint8(85), mid.G)
	assert.Equal(t, uint8(65), mid.B)
	assert.Equal(t, uint8(148), mid.A)
}

func TestTitleBarHiddenAlwaysInactive(t *testing.T) {
	got := TitleBar(scheme, true, true, 0.8, true)
	assert.Equal(t, scheme.InactiveTitleBar, got)
}

func TestTitleBarCrossFade(t *testing.T) {
	assert.Equal(t, scheme.ActiveTitleBar, TitleBar(scheme, true, false, 0, false))
	assert.Equal(t, scheme.InactiveTitleBar, TitleBar(scheme, false, false, 0, false))

	mid := TitleBar(scheme, false, true, 0.5, false)
	assert.Equal(t, Mix(scheme.InactiveTitleBar, scheme.ActiveTitleBar, 0.5), mid)
}

func TestOutline(t *testing.T) {
	_, ok := Outline(scheme, false, true, false, 0)
	assert.False(t, ok, "separator disabled")

	_, ok = Outline(scheme, true, false, false, 0)
	assert.False(t, ok, "inactive and idle: fully transparent")

	c, ok := Outline(scheme, true, true, false, 0)
	assert.True(t, ok)
	assert.Equal(t, scheme.Highlight, c)

	c, ok = Outline(scheme, true, false, true, 0.5)
	assert.True(t, ok)
	assert.Equal(t, scheme.Highlight.R, c.R)
	assert.Equal(t, uint8(128), c.A, "alpha scaled by progress")
}

func TestButtonForegroundPrecedence(t *testing.T) {
	titleBar := scheme.ActiveTitleBar
	font := scheme.ActiveForeground
	base := ButtonInput{Kind: button.Minimize, WindowActive: true, TitleBar: titleBar, Font: font}

	assert.Equal(t, font, ButtonForeground(base), "resting button uses font color")

	hovered := base
	hovered.State.Hovered = true
	assert.Equal(t, titleBar, ButtonForeground(hovered))

	pressed := hovered
	pressed.State.Pressed = true
	assert.Equal(t, titleBar, ButtonForeground(pressed))

	outlined := base
	outlined.Kind = button.Close
	outlined.OutlineClose = true
	assert.Equal(t, titleBar, ButtonForeground(outlined))

	checked := base
	checked.Kind = button.KeepAbove
	checked.State.Checked = true
	assert.Equal(t, titleBar, ButtonForeground(checked))

	animating := base
	animating.Animating = true
	animating.Progress = 0.5
	assert.Equal(t, Mix(font, titleBar, 0.5), ButtonForeground(animating))
}

func TestButtonBackgroundActive(t *testing.T) {
	in := ButtonInput{Kind: button.Close, WindowActive: true,
		TitleBar: scheme.ActiveTitleBar, Font: scheme.ActiveForeground}

	c, ok := ButtonBackground(in)
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 128}, c)

	in.State.Hovered = true
	c, _ = ButtonBackground(in)
	assert.Equal(t, uint8(192), c.A, "hover raises alpha while active")

	in.State.Pressed = true
	c, _ = ButtonBackground(in)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c, "pressed close is solid red")

	in.Kind = button.Shade
	c, ok = ButtonBackground(in)
	assert.True(t, ok, "any pressed button gets the mixed chip")
	assert.Equal(t, Mix(scheme.ActiveTitleBar, scheme.ActiveForeground, 0.3), c)

	in.State.Pressed = false
	_, ok = ButtonBackground(in)
	assert.False(t, ok, "non-semantic buttons have no resting background")
}

func TestButtonBackgroundInactiveIgnoresHover(t *testing.T) {
	want := color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 128}
	for _, hovered := range []bool{false, true} {
		in := ButtonInput{Kind: button.Close, WindowActive: false,
			State: button.State{Hovered: hovered}}
		c, ok := ButtonBackground(in)
		assert.True(t, ok)
		assert.Equal(t, want, c, "inactive chip is flat regardless of hover")
	}

	in := ButtonInput{Kind: button.Menu, WindowActive: false}
	_, ok := ButtonBackground(in)
	assert.False(t, ok)
}
