// Package button defines the closed set of title-bar button kinds and the
// interaction state shared by the layout, color, and rendering code.
package button

// Kind identifies a title-bar button. The set is closed; rendering and color
// selection switch over it exhaustively.
type Kind int

const (
	Menu Kind = iota
	ApplicationMenu
	OnAllDesktops
	Minimize
	Maximize
	Close
	ContextHelp
	Shade
	KeepBelow
	KeepAbove
	Spacer
)

var kindNames = map[Kind]string{
	Menu:            "menu",
	ApplicationMenu: "application-menu",
	OnAllDesktops:   "on-all-desktops",
	Minimize:        "minimize",
	Maximize:        "maximize",
	Close:           "close",
	ContextHelp:     "context-help",
	Shade:           "shade",
	KeepBelow:       "keep-below",
	KeepAbove:       "keep-above",
	Spacer:          "spacer",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Toggleable reports whether the kind carries a checked state that inverts
// its foreground when set.
func (k Kind) Toggleable() bool {
	switch k {
	case KeepAbove, KeepBelow, Shade:
		return true
	}
	return false
}

// State is the interaction state of one button instance.
type State struct {
	Hovered bool
	Pressed bool
	Checked bool
}
