package theme

import (
	"image/color"
	"sync"
)

// ShadowOffset is a shadow displacement in device-independent units.
type ShadowOffset struct {
	X int
	Y int
}

// ShadowLayer is one blurred layer of a composite shadow.
type ShadowLayer struct {
	Offset  ShadowOffset
	Radius  int
	Opacity float64
}

// CompositeShadowParams describes a drop shadow built from two stacked
// blurred layers plus an overall offset.
type CompositeShadowParams struct {
	Offset ShadowOffset
	Layer1 ShadowLayer
	Layer2 ShadowLayer
}

// IsNone reports whether the shadow has no visible extent.
func (p CompositeShadowParams) IsNone() bool {
	return p.Layer1.Radius == 0 && p.Layer2.Radius == 0
}

var shadowParams = map[ShadowSize]CompositeShadowParams{
	ShadowNone: {},
	ShadowSmall: {
		Offset: ShadowOffset{0, 4},
		Layer1: ShadowLayer{ShadowOffset{0, 0}, 16, 1},
		Layer2: ShadowLayer{ShadowOffset{0, -2}, 8, 0.4},
	},
	ShadowMedium: {
		Offset: ShadowOffset{0, 8},
		Layer1: ShadowLayer{ShadowOffset{0, 0}, 32, 0.9},
		Layer2: ShadowLayer{ShadowOffset{0, -4}, 16, 0.3},
	},
	ShadowLarge: {
		Offset: ShadowOffset{0, 12},
		Layer1: ShadowLayer{ShadowOffset{0, 0}, 48, 0.8},
		Layer2: ShadowLayer{ShadowOffset{0, -6}, 24, 0.2},
	},
	ShadowVeryLarge: {
		Offset: ShadowOffset{0, 16},
		Layer1: ShadowLayer{ShadowOffset{0, 0}, 64, 0.7},
		Layer2: ShadowLayer{ShadowOffset{0, -8}, 32, 0.1},
	},
}

// LookupShadowParams maps a size tier to its composite parameters. Unknown
// tiers fall back to Large.
func LookupShadowParams(size ShadowSize) CompositeShadowParams {
	if p, ok := shadowParams[size]; ok {
		return p
	}
	return shadowParams[ShadowLarge]
}

// ResolvedShadow is what a shadow renderer consumes: the tier parameters plus
// the color and scale the pixmap would be rasterized at. Rasterization itself
// lives outside this module.
type ResolvedShadow struct {
	Params CompositeShadowParams
	Color  color.NRGBA
	Scale  float64
}

type shadowKey struct {
	size  ShadowSize
	color color.NRGBA
	scale float64
}

// Shadow pixmaps are expensive and shared by every window on the same theme,
// so resolved entries are cached process-wide. The cache is read-only between
// reconfigurations and is invalidated as a whole unit, never field-by-field.
var shadowCache = struct {
	sync.RWMutex
	entries map[shadowKey]*ResolvedShadow
}{entries: make(map[shadowKey]*ResolvedShadow)}

// ShadowFor returns the cached resolved shadow for (size, color, scale),
// building it on first use.
func ShadowFor(size ShadowSize, col color.NRGBA, scale float64) *ResolvedShadow {
	key := shadowKey{size: size, color: col, scale: scale}

	shadowCache.RLock()
	if s, ok := shadowCache.entries[key]; ok {
		shadowCache.RUnlock()
		return s
	}
	shadowCache.RUnlock()

	s := &ResolvedShadow{
		Params: LookupShadowParams(size),
		Color:  col,
		Scale:  scale,
	}
	shadowCache.Lock()
	shadowCache.entries[key] = s
	shadowCache.Unlock()
	return s
}

// InvalidateShadowCache drops every cached shadow. Called on reconfiguration
// before any decoration re-resolves its shadow.
func InvalidateShadowCache() {
	shadowCache.Lock()
	shadowCache.entries = make(map[shadowKey]*ResolvedShadow)
	shadowCache.Unlock()
}
