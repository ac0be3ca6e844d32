package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/glasskit/glassdeco/internal/geo"
)

// Monitor represents a physical display.
type Monitor struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Bounds returns the monitor geometry as a rect in root coordinates.
func (m Monitor) Bounds() geo.Rect {
	return geo.Rect{X: float64(m.X), Y: float64(m.Y), W: float64(m.Width), H: float64(m.Height)}
}

// Monitors retrieves all active monitors using XRandR.
func (c *Connection) Monitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			Name:   name,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// MonitorFor returns the monitor containing the rect's center, falling
// back to the first monitor.
func (c *Connection) MonitorFor(rect geo.Rect) (Monitor, error) {
	monitors, err := c.Monitors()
	if err != nil {
		return Monitor{}, err
	}
	if len(monitors) == 0 {
		return Monitor{}, fmt.Errorf("no monitors found")
	}

	center := rect.Center()
	for _, mon := range monitors {
		if mon.Bounds().Contains(center) {
			return mon, nil
		}
	}
	return monitors[0], nil
}

// WorkArea returns the monitor bounds with panels and docks carved out.
// Dock struts are preferred; _NET_WORKAREA is the fallback for window
// managers that do not expose per-dock struts.
func (c *Connection) WorkArea(mon Monitor) geo.Rect {
	if area, ok := c.strutWorkArea(mon); ok {
		return area
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return mon.Bounds()
	}

	desktopIndex := 0
	if current, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(current) >= 0 && int(current) < len(workArea) {
			desktopIndex = int(current)
		}
	}

	wa := workArea[desktopIndex]
	area := geo.Rect{X: float64(wa.X), Y: float64(wa.Y), W: float64(wa.Width), H: float64(wa.Height)}
	clipped := mon.Bounds().Intersect(area)
	if clipped.IsEmpty() {
		return mon.Bounds()
	}
	return clipped
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

func (c *Connection) strutWorkArea(mon Monitor) (geo.Rect, bool) {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return geo.Rect{}, false
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return geo.Rect{}, false
	}

	var struts dockStruts
	for _, windowID := range clients {
		if !c.isDock(windowID) {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			accumulateStruts(mon, rootWidth, rootHeight, sp, &struts)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			sp := &ewmh.WmStrutPartial{
				Left:         s.Left,
				Right:        s.Right,
				Top:          s.Top,
				Bottom:       s.Bottom,
				LeftStartY:   0,
				LeftEndY:     uint(rootHeight - 1),
				RightStartY:  0,
				RightEndY:    uint(rootHeight - 1),
				TopStartX:    0,
				TopEndX:      uint(rootWidth - 1),
				BottomStartX: 0,
				BottomEndX:   uint(rootWidth - 1),
			}
			accumulateStruts(mon, rootWidth, rootHeight, sp, &struts)
		}
	}

	if struts.left == 0 && struts.right == 0 && struts.top == 0 && struts.bottom == 0 {
		return geo.Rect{}, false
	}

	area := geo.Rect{
		X: float64(mon.X + struts.left),
		Y: float64(mon.Y + struts.top),
		W: max(1, float64(mon.Width-struts.left-struts.right)),
		H: max(1, float64(mon.Height-struts.top-struts.bottom)),
	}
	return area, true
}

func (c *Connection) isDock(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

func accumulateStruts(mon Monitor, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc *dockStruts) {
	bounds := mon.Bounds()

	// Each strut claims a band along one root edge, limited to a span
	// along the perpendicular axis. Only the part overlapping this
	// monitor counts.
	if sp.Top > 0 {
		band := geo.Rect{X: float64(sp.TopStartX), Y: 0,
			W: float64(int(sp.TopEndX)-int(sp.TopStartX)) + 1, H: float64(sp.Top)}
		if isect := bounds.Intersect(band); !isect.IsEmpty() {
			acc.top = max(acc.top, int(isect.H))
		}
	}
	if sp.Bottom > 0 {
		band := geo.Rect{X: float64(sp.BottomStartX), Y: float64(rootHeight - int(sp.Bottom)),
			W: float64(int(sp.BottomEndX)-int(sp.BottomStartX)) + 1, H: float64(sp.Bottom)}
		if isect := bounds.Intersect(band); !isect.IsEmpty() {
			acc.bottom = max(acc.bottom, int(isect.H))
		}
	}
	if sp.Left > 0 {
		band := geo.Rect{X: 0, Y: float64(sp.LeftStartY),
			W: float64(sp.Left), H: float64(int(sp.LeftEndY)-int(sp.LeftStartY)) + 1}
		if isect := bounds.Intersect(band); !isect.IsEmpty() {
			acc.left = max(acc.left, int(isect.W))
		}
	}
	if sp.Right > 0 {
		band := geo.Rect{X: float64(rootWidth - int(sp.Right)), Y: float64(sp.RightStartY),
			W: float64(sp.Right), H: float64(int(sp.RightEndY)-int(sp.RightStartY)) + 1}
		if isect := bounds.Intersect(band); !isect.IsEmpty() {
			acc.right = max(acc.right, int(isect.W))
		}
	}
}
