// Package theme holds the user-configurable decoration parameters and the
// fixed shadow parameter table. A Config is an immutable snapshot: it is
// replaced wholesale on reconfiguration, never mutated in place.
package theme

import "time"

// BorderSize selects the frame border thickness category.
type BorderSize string

const (
	BorderNone      BorderSize = "none"
	BorderNoSides   BorderSize = "no-sides"
	BorderTiny      BorderSize = "tiny"
	BorderNormal    BorderSize = "normal"
	BorderLarge     BorderSize = "large"
	BorderVeryLarge BorderSize = "very-large"
	BorderHuge      BorderSize = "huge"
	BorderVeryHuge  BorderSize = "very-huge"
	BorderOversized BorderSize = "oversized"
)

// ButtonSize selects the title-bar button size category.
type ButtonSize string

const (
	ButtonTiny      ButtonSize = "tiny"
	ButtonSmall     ButtonSize = "small"
	ButtonDefault   ButtonSize = "default"
	ButtonLarge     ButtonSize = "large"
	ButtonVeryLarge ButtonSize = "very-large"
)

// ShadowSize selects a composite drop-shadow tier.
type ShadowSize string

const (
	ShadowNone      ShadowSize = "none"
	ShadowSmall     ShadowSize = "small"
	ShadowMedium    ShadowSize = "medium"
	ShadowLarge     ShadowSize = "large"
	ShadowVeryLarge ShadowSize = "very-large"
)

// TitleAlignment selects how the caption is placed in the title bar.
type TitleAlignment string

const (
	AlignLeft            TitleAlignment = "left"
	AlignRight           TitleAlignment = "right"
	AlignCenter          TitleAlignment = "center"
	AlignCenterFullWidth TitleAlignment = "center-full-width"
)

// Config is the immutable theme snapshot consumed by the decoration engine.
type Config struct {
	BorderSize            BorderSize     `yaml:"border_size"`
	ButtonSize            ButtonSize     `yaml:"button_size"`
	ShadowSize            ShadowSize     `yaml:"shadow_size"`
	TitleAlignment        TitleAlignment `yaml:"title_alignment"`
	CornerRadius          float64        `yaml:"corner_radius"`
	AnimationsEnabled     bool           `yaml:"animations_enabled"`
	AnimationsDurationMS  int            `yaml:"animations_duration_ms"`
	DrawTitleBarSeparator bool           `yaml:"draw_titlebar_separator"`
	OutlineCloseButton    bool           `yaml:"outline_close_button"`
	HideTitleBar          bool           `yaml:"hide_titlebar"`
}

// AnimationsDuration returns the configured transition duration. Zero when
// animations are disabled, which callers must treat as instantaneous.
func (c *Config) AnimationsDuration() time.Duration {
	if !c.AnimationsEnabled {
		return 0
	}
	return time.Duration(c.AnimationsDurationMS) * time.Millisecond
}

// Default returns the builtin theme.
func Default() *Config {
	return &Config{
		BorderSize:            BorderTiny,
		ButtonSize:            ButtonDefault,
		ShadowSize:            ShadowLarge,
		TitleAlignment:        AlignCenterFullWidth,
		CornerRadius:          5,
		AnimationsEnabled:     true,
		AnimationsDurationMS:  150,
		DrawTitleBarSeparator: false,
		OutlineCloseButton:    false,
		HideTitleBar:          false,
	}
}

// Provider hands out the current immutable theme snapshot. A reconfiguration
// event at the host triggers a full re-fetch; partial updates do not exist.
type Provider interface {
	Config() *Config
}

// StaticProvider is a Provider over a fixed snapshot.
type StaticProvider struct {
	Cfg *Config
}

func (p StaticProvider) Config() *Config {
	if p.Cfg == nil {
		return Default()
	}
	return p.Cfg
}
