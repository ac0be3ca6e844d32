package deco

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
	"github.com/glasskit/glassdeco/internal/host/hosttest"
	"github.com/glasskit/glassdeco/internal/theme"
)

type fixture struct {
	deco     *Decoration
	win      *hosttest.FakeWindow
	settings *hosttest.FakeSettings
	clock    *hosttest.ManualClock
	loop     *hosttest.ManualLoop
}

func newFixture(t *testing.T, cfg *theme.Config) *fixture {
	t.Helper()
	if cfg == nil {
		cfg = theme.Default()
	}
	f := &fixture{
		win:      hosttest.NewFakeWindow(),
		settings: hosttest.NewFakeSettings(),
		clock:    hosttest.NewManualClock(),
		loop:     &hosttest.ManualLoop{},
	}
	f.deco = New(f.win, f.settings, theme.StaticProvider{Cfg: cfg}, f.loop, f.clock, zerolog.Nop())
	f.deco.Init()
	f.loop.RunIdle()
	return f
}

func TestBorderNoneIsZero(t *testing.T) {
	cfg := theme.Default()
	cfg.BorderSize = theme.BorderNone
	f := newFixture(t, cfg)

	b := f.deco.Borders()
	assert.Equal(t, 0.0, b.Left)
	assert.Equal(t, 0.0, b.Right)
	assert.Equal(t, 0.0, b.Bottom)
	assert.Greater(t, b.Top, 0.0, "title bar still present")
}

func TestBorderCategories(t *testing.T) {
	// smallSpacing=2 at scale 1: base = max(1, 2) = 2.
	cases := []struct {
		size          theme.BorderSize
		sides, bottom float64
	}{
		{theme.BorderNoSides, 0, 4},  // bottom = snap(max(4, 2))
		{theme.BorderTiny, 2, 4},     // sides unsnapped base
		{theme.BorderNormal, 4, 4},   // base * 2
		{theme.BorderLarge, 6, 6},    // base * 3
		{theme.BorderVeryLarge, 8, 8},
		{theme.BorderHuge, 10, 10},
		{theme.BorderVeryHuge, 12, 12},
		{theme.BorderOversized, 20, 20},
	}
	for _, tc := range cases {
		cfg := theme.Default()
		cfg.BorderSize = tc.size
		f := newFixture(t, cfg)
		b := f.deco.Borders()
		assert.Equal(t, tc.sides, b.Left, "%s left", tc.size)
		assert.Equal(t, tc.sides, b.Right, "%s right", tc.size)
		assert.Equal(t, tc.bottom, b.Bottom, "%s bottom", tc.size)
	}
}

func TestTopBorderTracksFontAndButtonSize(t *testing.T) {
	f := newFixture(t, nil)
	// max(font 16, button 20) + smallSpacing*2*bottomMargin = 20 + 8.
	assert.Equal(t, 28.0, f.deco.Borders().Top)

	f.settings.Font = 30
	f.settings.Fire(host.FontChanged)
	// font now dominates: 30 + 8.
	assert.Equal(t, 38.0, f.deco.Borders().Top)
}

func TestHiddenTitleBarUniformFrame(t *testing.T) {
	cfg := theme.Default()
	cfg.HideTitleBar = true
	f := newFixture(t, cfg)

	b := f.deco.Borders()
	assert.Equal(t, b.Bottom, b.Top, "frame becomes uniform")
	r, _ := f.deco.CaptionRect()
	assert.True(t, r.IsEmpty())
}

func TestResizeOnlyBorders(t *testing.T) {
	cfg := theme.Default()
	cfg.BorderSize = theme.BorderNone
	f := newFixture(t, cfg)
	// largeSpacing = 4 snapped at scale 1.
	assert.Equal(t, geo.Margins{Left: 4, Right: 4, Bottom: 4}, f.deco.ResizeOnlyBorders())

	f.win.IsMaximizedH = true
	f.win.Fire(host.MaximizedHorizontallyChanged)
	assert.Equal(t, geo.Margins{Bottom: 4}, f.deco.ResizeOnlyBorders(),
		"no side grab area when horizontally maximized")

	cfg2 := theme.Default()
	cfg2.BorderSize = theme.BorderNoSides
	f2 := newFixture(t, cfg2)
	assert.Equal(t, geo.Margins{Left: 4, Right: 4}, f2.deco.ResizeOnlyBorders(),
		"sides only when only side borders are suppressed")
}

func TestMaximizedTitleBarPathIsPlainRect(t *testing.T) {
	f := newFixture(t, nil)
	f.win.IsMaximized = true
	f.win.Fire(host.MaximizedChanged)

	p := f.deco.TitleBarPath()
	assert.False(t, p.IsRounded())
	assert.Equal(t, geo.Rect{W: 800, H: f.deco.Borders().Top}, p.Rect)
}

func TestNoAlphaChannelMeansNoRounding(t *testing.T) {
	f := newFixture(t, nil)
	f.settings.AlphaSupport = false
	f.win.Fire(host.SizeChanged) // any geometry trigger rebuilds the shapes

	assert.False(t, f.deco.TitleBarPath().IsRounded())
	assert.False(t, f.deco.WindowPath().IsRounded())
}

func TestShadedWindowPathEqualsTitleBarPath(t *testing.T) {
	for _, maximized := range []bool{false, true} {
		for _, alpha := range []bool{false, true} {
			f := newFixture(t, nil)
			f.win.IsShaded = true
			f.win.IsMaximized = maximized
			f.settings.AlphaSupport = alpha
			f.win.Fire(host.ShadedChanged)
			f.loop.RunIdle()

			assert.True(t, f.deco.WindowPath().Equal(f.deco.TitleBarPath()),
				"maximized=%v alpha=%v", maximized, alpha)
		}
	}
}

func TestScreenEdgeSquaresCorners(t *testing.T) {
	f := newFixture(t, nil)
	p := f.deco.TitleBarPath()
	assert.Greater(t, p.TopLeft, 0.0)
	assert.Greater(t, p.TopRight, 0.0)
	assert.Equal(t, 0.0, p.BottomLeft, "bottom corners never round in the title bar")
	assert.Equal(t, 0.0, p.BottomRight)

	f.win.Edges = host.EdgeLeft
	f.win.Fire(host.AdjacentEdgesChanged)
	p = f.deco.TitleBarPath()
	assert.Equal(t, 0.0, p.TopLeft, "no visible rounding against the shared edge")
	assert.Greater(t, p.TopRight, 0.0)
}

func TestGeometryRecomputationIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)

	borders := f.deco.Borders()
	titleBar := f.deco.TitleBarPath()
	window := f.deco.WindowPath()
	input := f.deco.InputRect()

	f.deco.recalculateBorders()
	f.deco.updateTitleBar()
	f.loop.RunIdle()

	assert.Equal(t, borders, f.deco.Borders())
	assert.True(t, titleBar.Equal(f.deco.TitleBarPath()))
	assert.True(t, window.Equal(f.deco.WindowPath()))
	assert.Equal(t, input, f.deco.InputRect())
}

func TestTitleBarInputRectInsets(t *testing.T) {
	f := newFixture(t, nil)
	// sideMargin*small = 4, topMargin*small = 4, top border 28.
	assert.Equal(t, geo.Rect{X: 4, Y: 4, W: 792, H: 24}, f.deco.InputRect())

	f.win.IsMaximized = true
	f.win.Fire(host.MaximizedChanged)
	assert.Equal(t, geo.Rect{X: 0, Y: 0, W: 800, H: 28}, f.deco.InputRect(),
		"maximized window drags from the very edge")
}

func TestActivationAnimation(t *testing.T) {
	f := newFixture(t, nil)
	f.win.IsActive = false
	f.win.Fire(host.ActiveChanged)

	require.True(t, f.deco.anim.Running())
	f.win.RepaintRequests = nil
	f.clock.Advance(50 * time.Millisecond)
	assert.NotEmpty(t, f.win.RepaintRequests, "every tick schedules a repaint")

	f.clock.Advance(200 * time.Millisecond)
	assert.False(t, f.deco.anim.Running())
	assert.Equal(t, 0.0, f.deco.anim.Progress())
}

func TestActivationFlipMidAnimationKeepsProgress(t *testing.T) {
	f := newFixture(t, nil)
	f.win.IsActive = false
	f.win.Fire(host.ActiveChanged)
	f.clock.Advance(64 * time.Millisecond)
	p := f.deco.anim.Progress()
	require.Greater(t, p, 0.0)
	require.Less(t, p, 1.0)

	f.win.IsActive = true
	f.win.Fire(host.ActiveChanged)
	assert.InDelta(t, p, f.deco.anim.Progress(), 1e-9)
}

func TestDisabledAnimationsRepaintInstantly(t *testing.T) {
	cfg := theme.Default()
	cfg.AnimationsEnabled = false
	f := newFixture(t, cfg)

	f.win.RepaintRequests = nil
	f.win.IsActive = false
	f.win.Fire(host.ActiveChanged)
	assert.False(t, f.deco.anim.Running())
	assert.NotEmpty(t, f.win.RepaintRequests)
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	f := newFixture(t, nil)
	require.Greater(t, f.win.TotalSubscribers(), 0)

	f.deco.Close()
	assert.Equal(t, 0, f.win.TotalSubscribers(), "teardown releases every registration")

	// callbacks after teardown are no-ops, not faults
	f.deco.Paint(nil, geo.Rect{})
	f.deco.relayoutDeferred()
	f.loop.RunIdle()
}

func TestShadowResolution(t *testing.T) {
	cfg := theme.Default()
	cfg.ShadowSize = theme.ShadowMedium
	f := newFixture(t, cfg)

	s := f.deco.Shadow()
	assert.Equal(t, theme.ShadowOffset{X: 0, Y: 8}, s.Params.Offset)
	assert.Same(t, s, f.deco.Shadow(), "resolved shadows are shared")
}
