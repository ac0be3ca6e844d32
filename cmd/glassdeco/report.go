package main

import (
	"image/color"
	"strings"

	"github.com/glasskit/glassdeco/internal/deco"
	"github.com/glasskit/glassdeco/internal/geo"
	"github.com/glasskit/glassdeco/internal/host"
	"github.com/glasskit/glassdeco/internal/x11"
)

// snapshotWindow adapts a one-shot X snapshot to the engine's window
// interface. Nothing changes after construction, so subscriptions are
// inert and repaints are discarded.
type snapshotWindow struct {
	state x11.WindowState
	scale float64
}

func (w *snapshotWindow) Active() bool                { return w.state.Active }
func (w *snapshotWindow) MaximizedHorizontally() bool { return w.state.MaximizedH }
func (w *snapshotWindow) MaximizedVertically() bool   { return w.state.MaximizedV }
func (w *snapshotWindow) Maximized() bool             { return w.state.MaximizedH && w.state.MaximizedV }
func (w *snapshotWindow) Shaded() bool                { return w.state.Shaded }
func (w *snapshotWindow) AdjacentEdges() host.Edge    { return w.state.Edges }
func (w *snapshotWindow) Size() geo.Size {
	return geo.Size{W: w.state.Geometry.W, H: w.state.Geometry.H}
}
func (w *snapshotWindow) Scale() float64     { return w.scale }
func (w *snapshotWindow) NextScale() float64 { return w.scale }
func (w *snapshotWindow) Caption() string    { return w.state.Caption }

func (w *snapshotWindow) Closeable() bool           { return true }
func (w *snapshotWindow) Maximizeable() bool        { return true }
func (w *snapshotWindow) Minimizeable() bool        { return true }
func (w *snapshotWindow) Shadeable() bool           { return false }
func (w *snapshotWindow) ProvidesContextHelp() bool { return false }

func (w *snapshotWindow) Color(group host.ColorGroup, role host.ColorRole) color.NRGBA {
	if group == host.Active {
		switch role {
		case host.RoleTitleBar:
			return color.NRGBA{R: 0x20, G: 0x25, B: 0x2b, A: 0xff}
		case host.RoleForeground:
			return color.NRGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff}
		case host.RoleHighlight:
			return color.NRGBA{R: 0x3d, G: 0xae, B: 0xe9, A: 0xff}
		}
	}
	switch role {
	case host.RoleTitleBar:
		return color.NRGBA{R: 0x31, G: 0x36, B: 0x3b, A: 0xff}
	case host.RoleForeground:
		return color.NRGBA{R: 0xa0, G: 0xa4, B: 0xa8, A: 0xff}
	case host.RoleHighlight:
		return color.NRGBA{R: 0x3d, G: 0xae, B: 0xe9, A: 0xff}
	}
	return color.NRGBA{}
}

func (w *snapshotWindow) Repaint(geo.Rect) {}

func (w *snapshotWindow) Subscribe(host.WindowEvent, func()) (cancel func()) {
	return func() {}
}

// defaultSettings supplies typical compositor metrics for offline
// inspection; there is no live settings source to ask.
type defaultSettings struct{}

func (defaultSettings) FontHeight() float64 { return 16 }
func (defaultSettings) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * 8
}
func (defaultSettings) SmallSpacing() float64        { return 2 }
func (defaultSettings) LargeSpacing() float64        { return 4 }
func (defaultSettings) GridUnit() float64            { return 10 }
func (defaultSettings) AlphaChannelSupported() bool  { return true }
func (defaultSettings) Subscribe(host.SettingsEvent, func()) (cancel func()) {
	return func() {}
}

// drainLoop queues idle work and runs it when Drain is called, giving
// deferred relayouts one synchronous pass.
type drainLoop struct {
	queue []func()
}

func (l *drainLoop) OnIdle(fn func()) {
	l.queue = append(l.queue, fn)
}

func (l *drainLoop) Drain() {
	for len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue = l.queue[1:]
		fn()
	}
}

type rectReport struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func toRect(r geo.Rect) rectReport {
	return rectReport{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

type marginsReport struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

type buttonReport struct {
	Kind     string     `yaml:"kind"`
	Visible  bool       `yaml:"visible"`
	Geometry rectReport `yaml:"geometry"`
}

type layerReport struct {
	OffsetY int     `yaml:"offset_y"`
	Radius  int     `yaml:"radius"`
	Opacity float64 `yaml:"opacity"`
}

type shadowReport struct {
	Size    string      `yaml:"size"`
	None    bool        `yaml:"none"`
	OffsetX int         `yaml:"offset_x"`
	OffsetY int         `yaml:"offset_y"`
	Layer1  layerReport `yaml:"layer1"`
	Layer2  layerReport `yaml:"layer2"`
	Scale   float64     `yaml:"scale"`
}

type inspectReport struct {
	Caption       string         `yaml:"caption"`
	Active        bool           `yaml:"active"`
	MaximizedH    bool           `yaml:"maximized_horizontally"`
	MaximizedV    bool           `yaml:"maximized_vertically"`
	Shaded        bool           `yaml:"shaded"`
	Monitor       string         `yaml:"monitor"`
	WorkArea      rectReport     `yaml:"work_area"`
	Edges         string         `yaml:"adjacent_edges"`
	Borders       marginsReport  `yaml:"borders"`
	ResizeBorders marginsReport  `yaml:"resize_only_borders"`
	TitleBarRect  rectReport     `yaml:"titlebar_rect"`
	InputRect     rectReport     `yaml:"input_rect"`
	CaptionRect   rectReport     `yaml:"caption_rect"`
	LeftButtons   []buttonReport `yaml:"left_buttons"`
	RightButtons  []buttonReport `yaml:"right_buttons"`
	Shadow        shadowReport   `yaml:"shadow"`
}

func buildReport(state x11.WindowState, d *deco.Decoration) inspectReport {
	borders := d.Borders()
	resize := d.ResizeOnlyBorders()
	captionRect, _ := d.CaptionRect()
	shadow := d.Shadow()

	report := inspectReport{
		Caption:    state.Caption,
		Active:     state.Active,
		MaximizedH: state.MaximizedH,
		MaximizedV: state.MaximizedV,
		Shaded:     state.Shaded,
		Monitor:    state.Monitor,
		WorkArea:   toRect(state.WorkArea),
		Edges:      edgesString(state.Edges),
		Borders: marginsReport{
			Left: borders.Left, Top: borders.Top, Right: borders.Right, Bottom: borders.Bottom,
		},
		ResizeBorders: marginsReport{
			Left: resize.Left, Top: resize.Top, Right: resize.Right, Bottom: resize.Bottom,
		},
		TitleBarRect: toRect(d.TitleBarRect()),
		InputRect:    toRect(d.InputRect()),
		CaptionRect:  toRect(captionRect),
	}

	for _, b := range d.LeftButtons().Buttons() {
		report.LeftButtons = append(report.LeftButtons, buttonReport{
			Kind: b.Kind().String(), Visible: b.Visible(), Geometry: toRect(b.Geometry()),
		})
	}
	for _, b := range d.RightButtons().Buttons() {
		report.RightButtons = append(report.RightButtons, buttonReport{
			Kind: b.Kind().String(), Visible: b.Visible(), Geometry: toRect(b.Geometry()),
		})
	}

	if shadow != nil {
		report.Shadow = shadowReport{
			Size:    string(d.Config().ShadowSize),
			None:    shadow.Params.IsNone(),
			OffsetX: shadow.Params.Offset.X,
			OffsetY: shadow.Params.Offset.Y,
			Layer1:  layerReport{shadow.Params.Layer1.Offset.Y, shadow.Params.Layer1.Radius, shadow.Params.Layer1.Opacity},
			Layer2:  layerReport{shadow.Params.Layer2.Offset.Y, shadow.Params.Layer2.Radius, shadow.Params.Layer2.Opacity},
			Scale:   shadow.Scale,
		}
	}

	return report
}

func edgesString(e host.Edge) string {
	var parts []string
	if e.Has(host.EdgeLeft) {
		parts = append(parts, "left")
	}
	if e.Has(host.EdgeTop) {
		parts = append(parts, "top")
	}
	if e.Has(host.EdgeRight) {
		parts = append(parts, "right")
	}
	if e.Has(host.EdgeBottom) {
		parts = append(parts, "bottom")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
