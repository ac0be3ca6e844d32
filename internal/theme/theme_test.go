package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"border_size: no-sides\ncorner_radius: 8\nanimations_enabled: false\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BorderNoSides, cfg.BorderSize)
	assert.Equal(t, 8.0, cfg.CornerRadius)
	assert.False(t, cfg.AnimationsEnabled)
	// Untouched fields keep their defaults.
	assert.Equal(t, ButtonDefault, cfg.ButtonSize)
	assert.Equal(t, AlignCenterFullWidth, cfg.TitleAlignment)
}

func TestLoadUnknownTiersFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"border_size: gigantic\nbutton_size: nano\nshadow_size: colossal\ntitle_alignment: diagonal\ncorner_radius: -3\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BorderTiny, cfg.BorderSize)
	assert.Equal(t, ButtonDefault, cfg.ButtonSize)
	assert.Equal(t, ShadowLarge, cfg.ShadowSize)
	assert.Equal(t, AlignCenterFullWidth, cfg.TitleAlignment)
	assert.Equal(t, 0.0, cfg.CornerRadius)
}

func TestAnimationsDurationDisabled(t *testing.T) {
	cfg := Default()
	cfg.AnimationsEnabled = false
	assert.Zero(t, cfg.AnimationsDuration())
}

func TestLookupShadowParamsMedium(t *testing.T) {
	p := LookupShadowParams(ShadowMedium)
	assert.Equal(t, ShadowOffset{0, 8}, p.Offset)
	assert.Equal(t, ShadowLayer{ShadowOffset{0, 0}, 32, 0.9}, p.Layer1)
	assert.Equal(t, ShadowLayer{ShadowOffset{0, -4}, 16, 0.3}, p.Layer2)
	assert.False(t, p.IsNone())
}

func TestLookupShadowParamsUnknownFallsBackToLarge(t *testing.T) {
	assert.Equal(t, LookupShadowParams(ShadowLarge), LookupShadowParams(ShadowSize("colossal")))
}

func TestShadowCacheSharesAndInvalidates(t *testing.T) {
	InvalidateShadowCache()
	col := color.NRGBA{A: 255}

	a := ShadowFor(ShadowMedium, col, 1.0)
	b := ShadowFor(ShadowMedium, col, 1.0)
	assert.Same(t, a, b, "same key must share one entry")

	c := ShadowFor(ShadowMedium, col, 2.0)
	assert.NotSame(t, a, c, "different scale is a different entry")

	InvalidateShadowCache()
	d := ShadowFor(ShadowMedium, col, 1.0)
	assert.NotSame(t, a, d, "invalidation rebuilds entries")
	assert.Equal(t, a.Params, d.Params)
}

func TestShadowNoneIsNone(t *testing.T) {
	assert.True(t, LookupShadowParams(ShadowNone).IsNone())
}
