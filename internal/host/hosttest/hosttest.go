// Package hosttest provides in-memory host doubles for engine tests: a fake
// window, fake settings, a manually advanced clock, and a manual event loop.
package hosttest

import (
	"image/color"
	"sort"
	"time"

	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
)

// FakeWindow is a host.Window with settable state. Mutate the fields, then
// Fire the matching event to run subscribed callbacks.
type FakeWindow struct {
	IsActive        bool
	IsMaximized     bool
	IsMaximizedH    bool
	IsMaximizedV    bool
	IsShaded        bool
	Edges           host.Edge
	WindowSize      geo.Size
	DisplayScale    float64
	Title           string
	CanClose        bool
	CanMaximize     bool
	CanMinimize     bool
	CanShade        bool
	HasContextHelp  bool
	Colors          map[host.ColorGroup]map[host.ColorRole]color.NRGBA
	RepaintRequests []geo.Rect

	subs   map[host.WindowEvent][]*windowSub
	nextID int
}

type windowSub struct {
	id int
	fn func()
}

// NewFakeWindow returns a plausible 800x600 active window at scale 1 with a
// simple light-on-dark scheme.
func NewFakeWindow() *FakeWindow {
	return &FakeWindow{
		IsActive:     true,
		WindowSize:   geo.Size{W: 800, H: 600},
		DisplayScale: 1,
		Title:        "fake window",
		CanClose:     true,
		CanMaximize:  true,
		CanMinimize:  true,
		Colors: map[host.ColorGroup]map[host.ColorRole]color.NRGBA{
			host.Active: {
				host.RoleTitleBar:   {R: 0x20, G: 0x25, B: 0x2b, A: 0xff},
				host.RoleForeground: {R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff},
				host.RoleHighlight:  {R: 0x3d, G: 0xae, B: 0xe9, A: 0xff},
			},
			host.Inactive: {
				host.RoleTitleBar:   {R: 0x31, G: 0x36, B: 0x3b, A: 0xff},
				host.RoleForeground: {R: 0xa0, G: 0xa4, B: 0xa8, A: 0xff},
				host.RoleHighlight:  {R: 0x3d, G: 0xae, B: 0xe9, A: 0xff},
			},
		},
	}
}

func (w *FakeWindow) Active() bool                { return w.IsActive }
func (w *FakeWindow) Maximized() bool             { return w.IsMaximized }
func (w *FakeWindow) MaximizedHorizontally() bool { return w.IsMaximizedH }
func (w *FakeWindow) MaximizedVertically() bool   { return w.IsMaximizedV }
func (w *FakeWindow) Shaded() bool                { return w.IsShaded }
func (w *FakeWindow) AdjacentEdges() host.Edge    { return w.Edges }
func (w *FakeWindow) Size() geo.Size              { return w.WindowSize }
func (w *FakeWindow) Scale() float64              { return w.DisplayScale }
func (w *FakeWindow) NextScale() float64          { return w.DisplayScale }
func (w *FakeWindow) Caption() string             { return w.Title }
func (w *FakeWindow) Closeable() bool             { return w.CanClose }
func (w *FakeWindow) Maximizeable() bool          { return w.CanMaximize }
func (w *FakeWindow) Minimizeable() bool          { return w.CanMinimize }
func (w *FakeWindow) Shadeable() bool             { return w.CanShade }
func (w *FakeWindow) ProvidesContextHelp() bool   { return w.HasContextHelp }

func (w *FakeWindow) Color(group host.ColorGroup, role host.ColorRole) color.NRGBA {
	if roles, ok := w.Colors[group]; ok {
		if c, ok := roles[role]; ok {
			return c
		}
	}
	return color.NRGBA{}
}

func (w *FakeWindow) Repaint(region geo.Rect) {
	w.RepaintRequests = append(w.RepaintRequests, region)
}

func (w *FakeWindow) Subscribe(ev host.WindowEvent, fn func()) func() {
	if w.subs == nil {
		w.subs = make(map[host.WindowEvent][]*windowSub)
	}
	w.nextID++
	sub := &windowSub{id: w.nextID, fn: fn}
	w.subs[ev] = append(w.subs[ev], sub)
	return func() {
		list := w.subs[ev]
		for i, s := range list {
			if s.id == sub.id {
				w.subs[ev] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Fire runs every callback subscribed to ev.
func (w *FakeWindow) Fire(ev host.WindowEvent) {
	for _, s := range append([]*windowSub(nil), w.subs[ev]...) {
		s.fn()
	}
}

// SubscriberCount reports how many callbacks are registered for ev.
func (w *FakeWindow) SubscriberCount(ev host.WindowEvent) int {
	return len(w.subs[ev])
}

// TotalSubscribers reports registrations across all events.
func (w *FakeWindow) TotalSubscribers() int {
	n := 0
	for _, list := range w.subs {
		n += len(list)
	}
	return n
}

// FakeSettings is a host.Settings double. Text width is approximated as a
// fixed advance per rune.
type FakeSettings struct {
	Font         float64
	CharWidth    float64
	Small        float64
	Large        float64
	Grid         float64
	AlphaSupport bool

	subs   map[host.SettingsEvent][]*windowSub
	nextID int
}

// NewFakeSettings returns settings matching a typical 96dpi desktop.
func NewFakeSettings() *FakeSettings {
	return &FakeSettings{
		Font:         16,
		CharWidth:    8,
		Small:        2,
		Large:        4,
		Grid:         10,
		AlphaSupport: true,
	}
}

func (s *FakeSettings) FontHeight() float64 { return s.Font }
func (s *FakeSettings) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * s.CharWidth
}
func (s *FakeSettings) SmallSpacing() float64       { return s.Small }
func (s *FakeSettings) LargeSpacing() float64       { return s.Large }
func (s *FakeSettings) GridUnit() float64           { return s.Grid }
func (s *FakeSettings) AlphaChannelSupported() bool { return s.AlphaSupport }

func (s *FakeSettings) Subscribe(ev host.SettingsEvent, fn func()) func() {
	if s.subs == nil {
		s.subs = make(map[host.SettingsEvent][]*windowSub)
	}
	s.nextID++
	sub := &windowSub{id: s.nextID, fn: fn}
	s.subs[ev] = append(s.subs[ev], sub)
	return func() {
		list := s.subs[ev]
		for i, x := range list {
			if x.id == sub.id {
				s.subs[ev] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Fire runs every callback subscribed to ev.
func (s *FakeSettings) Fire(ev host.SettingsEvent) {
	for _, x := range append([]*windowSub(nil), s.subs[ev]...) {
		x.fn()
	}
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Time
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// ManualClock is a host.Clock advanced by hand.
type ManualClock struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

// NewManualClock starts at a fixed epoch.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(1000, 0)}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, fn func()) host.Timer {
	c.seq++
	t := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in order. Callbacks may
// schedule further timers; those fire too if they fall within the window.
func (c *ManualClock) Advance(d time.Duration) {
	deadline := c.now.Add(d)
	for {
		next := c.dueBefore(deadline)
		if next == nil {
			break
		}
		c.now = next.at
		next.stopped = true
		next.fn()
	}
	c.now = deadline
}

func (c *ManualClock) dueBefore(deadline time.Time) *manualTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	for _, t := range c.timers {
		if !t.at.After(deadline) {
			return t
		}
	}
	return nil
}

// ManualLoop is a host.EventLoop drained explicitly by tests.
type ManualLoop struct {
	queue []func()
}

func (l *ManualLoop) OnIdle(fn func()) {
	l.queue = append(l.queue, fn)
}

// Pending reports the number of queued idle callbacks.
func (l *ManualLoop) Pending() int {
	return len(l.queue)
}

// RunIdle drains the queue, including callbacks enqueued while draining.
func (l *ManualLoop) RunIdle() {
	for len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue = l.queue[1:]
		fn()
	}
}
