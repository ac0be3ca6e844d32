package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
)

// WindowState is a one-shot snapshot of the decoration-relevant state of
// an X client window.
type WindowState struct {
	ID         xproto.Window
	Caption    string
	Active     bool
	MaximizedH bool
	MaximizedV bool
	Shaded     bool
	Geometry   geo.Rect
	Monitor    string
	WorkArea   geo.Rect
	Edges      host.Edge
}

// ActiveWindow returns the currently focused client window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("query active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// Snapshot reads the decoration-relevant state of one window. The caption
// prefers _NET_WM_NAME and falls back to the ICCCM WM_NAME.
func (c *Connection) Snapshot(windowID xproto.Window) (WindowState, error) {
	state := WindowState{ID: windowID}

	caption, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err != nil || caption == "" {
		caption, _ = icccm.WmNameGet(c.XUtil, windowID)
	}
	state.Caption = caption

	if active, err := ewmh.ActiveWindowGet(c.XUtil); err == nil {
		state.Active = active == windowID
	}

	if states, err := ewmh.WmStateGet(c.XUtil, windowID); err == nil {
		for _, s := range states {
			switch s {
			case "_NET_WM_STATE_MAXIMIZED_HORZ":
				state.MaximizedH = true
			case "_NET_WM_STATE_MAXIMIZED_VERT":
				state.MaximizedV = true
			case "_NET_WM_STATE_SHADED":
				state.Shaded = true
			}
		}
	}

	rect, err := c.windowRect(windowID)
	if err != nil {
		return state, err
	}
	state.Geometry = rect

	if mon, err := c.MonitorFor(rect); err == nil {
		// Adjacency is judged against the panel-free work area: a window
		// flush against a dock has not reached the screen edge.
		state.Monitor = mon.Name
		state.WorkArea = c.WorkArea(mon)
		state.Edges = edgeAdjacency(rect, state.WorkArea)
	}

	return state, nil
}

// windowRect returns the window's geometry in root coordinates.
func (c *Connection) windowRect(windowID xproto.Window) (geo.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geo.Rect{}, fmt.Errorf("query geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(), windowID, c.Root, 0, 0,
	).Reply()
	if err != nil {
		return geo.Rect{}, fmt.Errorf("translate coordinates: %w", err)
	}

	return geo.Rect{
		X: float64(translate.DstX),
		Y: float64(translate.DstY),
		W: float64(geom.Width),
		H: float64(geom.Height),
	}, nil
}

// edgeAdjacency reports which edges of the usable area the window touches
// within a one-pixel tolerance. Frame extents are not yet known at snapshot
// time, so the client rect stands in for the frame.
func edgeAdjacency(win, area geo.Rect) host.Edge {
	const tolerance = 1.0

	var edges host.Edge
	if win.X-area.X <= tolerance {
		edges |= host.EdgeLeft
	}
	if area.Right()-win.Right() <= tolerance {
		edges |= host.EdgeRight
	}
	if win.Y-area.Y <= tolerance {
		edges |= host.EdgeTop
	}
	if area.Bottom()-win.Bottom() <= tolerance {
		edges |= host.EdgeBottom
	}
	return edges
}
