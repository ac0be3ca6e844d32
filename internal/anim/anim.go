// Package anim implements the time-driven scalar interpolation behind the
// decoration's hover and activation transitions. A Controller is a small
// state machine over {idle, running(forward), running(backward)} producing a
// progress value in [0, 1] on an ease-in/ease-out curve.
package anim

import (
	"time"

	"github.com/glasskit/glassdeco/internal/host"
)

// Direction is the interpolation target: Forward runs toward 1, Backward
// toward 0.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// tickInterval paces clock callbacks while running. Progress is derived from
// elapsed time, so a late callback does not slow the transition down.
const tickInterval = 16 * time.Millisecond

// Controller drives one animated entity. Not safe for concurrent use; all
// methods run on the host event thread.
type Controller struct {
	clock    host.Clock
	duration time.Duration

	t         float64 // normalized time, advanced linearly
	direction Direction
	running   bool
	timer     host.Timer
	last      time.Time

	onTick func()
}

// NewController returns an idle controller at progress 0.
func NewController(clock host.Clock) *Controller {
	return &Controller{clock: clock}
}

// SetDuration sets the full-transition duration. Zero or negative disables
// animation: subsequent starts jump straight to the endpoint.
func (c *Controller) SetDuration(d time.Duration) {
	c.duration = d
}

// Duration returns the configured transition duration.
func (c *Controller) Duration() time.Duration {
	return c.duration
}

// Running reports whether a transition is in flight.
func (c *Controller) Running() bool {
	return c.running
}

// Direction returns the current interpolation target.
func (c *Controller) Direction() Direction {
	return c.direction
}

// Progress returns the eased interpolation value in [0, 1]. The value is
// retained when the controller goes idle.
func (c *Controller) Progress() float64 {
	return easeInOutQuad(c.t)
}

// OnTick registers the callback invoked after every progress change,
// typically a repaint request.
func (c *Controller) OnTick(fn func()) {
	c.onTick = fn
}

// Start begins interpolating toward the endpoint for dir. If a transition is
// already running in the opposite direction it reverses in place, keeping the
// accumulated progress so the visual never pops. With animation disabled the
// progress jumps to the endpoint and no running state is observable.
func (c *Controller) Start(dir Direction) {
	if c.duration <= 0 {
		c.direction = dir
		c.t = endpoint(dir)
		c.stopTimer()
		c.running = false
		c.notify()
		return
	}

	c.direction = dir
	if c.running {
		return
	}
	if c.t == endpoint(dir) {
		return
	}
	c.running = true
	c.last = c.clock.Now()
	c.schedule()
}

// SnapTo jumps progress to the endpoint for dir without animating and
// without notifying. Used to seed a controller from the initial entity state.
func (c *Controller) SnapTo(dir Direction) {
	c.stopTimer()
	c.running = false
	c.direction = dir
	c.t = endpoint(dir)
}

// Retarget flips the interpolation target mid-flight without discarding
// progress. Idle controllers simply start.
func (c *Controller) Retarget(dir Direction) {
	c.Start(dir)
}

// Stop halts the transition, retaining the current progress.
func (c *Controller) Stop() {
	c.stopTimer()
	c.running = false
}

func (c *Controller) schedule() {
	c.timer = c.clock.AfterFunc(tickInterval, c.tick)
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) tick() {
	if !c.running {
		return
	}
	now := c.clock.Now()
	dt := now.Sub(c.last)
	c.last = now

	step := float64(dt) / float64(c.duration)
	if c.direction == Forward {
		c.t += step
	} else {
		c.t -= step
	}

	if c.t <= 0 {
		c.t = 0
	} else if c.t >= 1 {
		c.t = 1
	}

	if c.t == endpoint(c.direction) {
		c.running = false
		c.timer = nil
	} else {
		c.schedule()
	}
	c.notify()
}

func (c *Controller) notify() {
	if c.onTick != nil {
		c.onTick()
	}
}

func endpoint(dir Direction) float64 {
	if dir == Forward {
		return 1
	}
	return 0
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}
