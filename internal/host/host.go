// Package host declares the collaborator interfaces the decoration engine
// consumes: the decorated window, the compositor settings, the animation
// clock, and the cooperative event loop. The engine owns none of these; it
// registers typed callbacks against them at construction and releases every
// registration at teardown.
package host

import (
	"image/color"

	"github.com/glasskit/glassdeco/internal/geo"
)

// ColorGroup selects the active or inactive variant of a scheme color.
type ColorGroup int

const (
	Inactive ColorGroup = iota
	Active
)

// ColorRole names a scheme color within a group.
type ColorRole int

const (
	RoleTitleBar ColorRole = iota
	RoleForeground
	RoleHighlight
)

// Edge is a bitmask of window edges that touch a physical screen boundary.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Has reports whether e contains the given edge.
func (e Edge) Has(edge Edge) bool {
	return e&edge != 0
}

// WindowEvent identifies a window change notification source.
type WindowEvent int

const (
	ActiveChanged WindowEvent = iota
	SizeChanged
	MaximizedChanged
	MaximizedHorizontallyChanged
	MaximizedVerticallyChanged
	ShadedChanged
	AdjacentEdgesChanged
	CaptionChanged
	IconChanged
	CloseableChanged
	MaximizeableChanged
	MinimizeableChanged
	ShadeableChanged
	ContextHelpChanged
)

// SettingsEvent identifies a settings change notification source.
type SettingsEvent int

const (
	FontChanged SettingsEvent = iota
	SpacingChanged
	BorderSizeChanged
	Reconfigured
)

// Window is the host-owned state of one decorated window. All accessors are
// read-only snapshots of host state; the engine reacts to changes through
// Subscribe callbacks.
type Window interface {
	Active() bool
	Maximized() bool
	MaximizedHorizontally() bool
	MaximizedVertically() bool
	Shaded() bool
	AdjacentEdges() Edge
	Size() geo.Size
	Scale() float64
	NextScale() float64
	Caption() string

	Closeable() bool
	Maximizeable() bool
	Minimizeable() bool
	Shadeable() bool
	ProvidesContextHelp() bool

	// Color looks a scheme color up by group and role.
	Color(group ColorGroup, role ColorRole) color.NRGBA

	// Repaint asks the host to schedule a repaint of the given decoration
	// region. An empty rect repaints the whole decoration.
	Repaint(region geo.Rect)

	// Subscribe registers a callback for one change-notification source and
	// returns its release function.
	Subscribe(ev WindowEvent, fn func()) (cancel func())
}

// Settings exposes the compositor-wide decoration settings.
type Settings interface {
	FontHeight() float64
	// TextWidth returns the advance width of s in the title-bar font.
	TextWidth(s string) float64
	SmallSpacing() float64
	LargeSpacing() float64
	GridUnit() float64
	AlphaChannelSupported() bool

	Subscribe(ev SettingsEvent, fn func()) (cancel func())
}

// EventLoop is the host's cooperative event loop. OnIdle enqueues fn to run
// after the current event-processing turn; the deferred call observes the
// final state of everything mutated within the turn.
type EventLoop interface {
	OnIdle(fn func())
}
