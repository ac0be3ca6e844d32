package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/stretchr/testify/assert"

	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
)

func TestEdgeAdjacencyAgainstWorkArea(t *testing.T) {
	// 1920x1080 monitor with a 30px top panel: the usable area starts at y=30.
	area := geo.Rect{X: 0, Y: 30, W: 1920, H: 1050}

	// A window flush against the panel touches the work-area top, not the
	// monitor top, and still counts as top-adjacent.
	win := geo.Rect{X: 0, Y: 30, W: 800, H: 600}
	edges := edgeAdjacency(win, area)
	assert.True(t, edges.Has(host.EdgeTop))
	assert.True(t, edges.Has(host.EdgeLeft))
	assert.False(t, edges.Has(host.EdgeRight))
	assert.False(t, edges.Has(host.EdgeBottom))

	// At the raw monitor top the window overshoots the work area; adjacency
	// never reports edges the window has not reached from inside.
	centered := geo.Rect{X: 560, Y: 270, W: 800, H: 600}
	assert.Equal(t, host.Edge(0), edgeAdjacency(centered, area))

	// One-pixel rounding slack still counts as touching.
	almost := geo.Rect{X: 1, Y: 31, W: 1918, H: 1048}
	edges = edgeAdjacency(almost, area)
	assert.True(t, edges.Has(host.EdgeLeft))
	assert.True(t, edges.Has(host.EdgeTop))
	assert.True(t, edges.Has(host.EdgeRight))
	assert.True(t, edges.Has(host.EdgeBottom))
}

func TestAccumulateStrutsClipsToMonitor(t *testing.T) {
	// Two side-by-side 1920x1080 monitors; root spans both.
	left := Monitor{Name: "DP-1", X: 0, Y: 0, Width: 1920, Height: 1080}
	right := Monitor{Name: "DP-2", X: 1920, Y: 0, Width: 1920, Height: 1080}
	const rootW, rootH = 3840, 1080

	// A 30px top panel across the left monitor only.
	panel := &ewmh.WmStrutPartial{Top: 30, TopStartX: 0, TopEndX: 1919}

	var acc dockStruts
	accumulateStruts(left, rootW, rootH, panel, &acc)
	assert.Equal(t, 30, acc.top)
	assert.Equal(t, 0, acc.left)
	assert.Equal(t, 0, acc.bottom)

	// The right monitor lies outside the strut's span and is unaffected.
	acc = dockStruts{}
	accumulateStruts(right, rootW, rootH, panel, &acc)
	assert.Equal(t, dockStruts{}, acc)
}

func TestAccumulateStrutsKeepsDeepestDock(t *testing.T) {
	mon := Monitor{Name: "DP-1", X: 0, Y: 0, Width: 1920, Height: 1080}
	const rootW, rootH = 1920, 1080

	var acc dockStruts
	accumulateStruts(mon, rootW, rootH,
		&ewmh.WmStrutPartial{Bottom: 40, BottomStartX: 0, BottomEndX: 1919}, &acc)
	accumulateStruts(mon, rootW, rootH,
		&ewmh.WmStrutPartial{Bottom: 24, BottomStartX: 0, BottomEndX: 1919}, &acc)

	assert.Equal(t, 40, acc.bottom, "overlapping docks do not stack; the deepest wins")
}
