package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Normalization fallbacks for unknown category strings. Visual continuity is
// preferred over strict validation: an unmapped tier degrades to a documented
// default instead of failing the load.
const (
	fallbackBorderSize = BorderTiny
	fallbackButtonSize = ButtonDefault
	fallbackShadowSize = ShadowLarge
	fallbackAlignment  = AlignCenterFullWidth
)

func normalizeBorderSize(v BorderSize) BorderSize {
	switch v {
	case BorderNone, BorderNoSides, BorderTiny, BorderNormal, BorderLarge,
		BorderVeryLarge, BorderHuge, BorderVeryHuge, BorderOversized:
		return v
	}
	return fallbackBorderSize
}

func normalizeButtonSize(v ButtonSize) ButtonSize {
	switch v {
	case ButtonTiny, ButtonSmall, ButtonDefault, ButtonLarge, ButtonVeryLarge:
		return v
	}
	return fallbackButtonSize
}

func normalizeShadowSize(v ShadowSize) ShadowSize {
	switch v {
	case ShadowNone, ShadowSmall, ShadowMedium, ShadowLarge, ShadowVeryLarge:
		return v
	}
	return fallbackShadowSize
}

func normalizeAlignment(v TitleAlignment) TitleAlignment {
	switch v {
	case AlignLeft, AlignRight, AlignCenter, AlignCenterFullWidth:
		return v
	}
	return fallbackAlignment
}

// Normalize returns a copy of cfg with every enum category mapped to a known
// tier and out-of-range numbers clamped.
func Normalize(cfg *Config) *Config {
	out := *cfg
	out.BorderSize = normalizeBorderSize(out.BorderSize)
	out.ButtonSize = normalizeButtonSize(out.ButtonSize)
	out.ShadowSize = normalizeShadowSize(out.ShadowSize)
	out.TitleAlignment = normalizeAlignment(out.TitleAlignment)
	if out.CornerRadius < 0 {
		out.CornerRadius = 0
	}
	if out.AnimationsDurationMS < 0 {
		out.AnimationsDurationMS = 0
	}
	return &out
}

// Load reads a theme file and merges it over the builtin defaults. Fields
// absent from the file keep their default values; unknown enum strings fall
// back to their documented tiers.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return Normalize(cfg), nil
}
