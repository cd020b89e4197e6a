package ui

import (
	"fmt"
	"image"
	colorpkg "image/color"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xgraphics"
	"github.com/jezek/xgbutil/xwindow"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/store"

	log "github.com/sirupsen/logrus"
)

// Drawer abstracts the surface the bar paints text and rectangles
// onto. The core never hardcodes a rasterizer or font library against
// it; DefaultDrawer below is the xgbutil/xgraphics-backed
// implementation this binary ships, grounded on mark-cooke-cortile's
// ui/overlay.go xgraphics+freetype renderer.
type Drawer interface {
	// TextWidth measures s as it would be rendered, in pixels.
	TextWidth(s string) int
	// DrawRect fills a rectangle with a "#rrggbb" color.
	DrawRect(x, y, w, h int, color string)
	// DrawText draws s with its baseline at (x,y) in a "#rrggbb" color.
	DrawText(x, y int, s, color string) int
	// Height reports the font's line height plus padding, the bar's
	// thickness.
	Height() int
	// Present flushes pending draws to the window win.
	Present(win xproto.Window, width, height int)
}

// segment records one clickable region of the last-drawn bar, used by
// ClassifyX to turn a ButtonPress X coordinate into a common.Click.
type segment struct {
	end  int
	kind common.Click
	tag  uint32 // valid when kind == common.ClickTagBar
}

var (
	barWindows = map[int]xproto.Window{}
	segments   = map[int][]segment{}
	drawer     Drawer
)

// SetDrawer installs the Drawer implementation the bar renders
// through. Called once at startup with DefaultDrawer unless a build
// wires in something else.
func SetDrawer(d Drawer) { drawer = d }

// BarHeight reports the configured drawer's line height, the value
// Monitor.BarHeight is seeded with.
func BarHeight() int {
	if drawer == nil {
		return 0
	}
	return drawer.Height()
}

// CreateBarWindow creates m's bar window (override-redirect, mapped
// only if ShowBar), grounded on mark-cooke-cortile/ui/overlay.go's
// xwindow.Generate/Create usage.
func CreateBarWindow(m *store.Monitor) (xproto.Window, error) {
	win, err := xwindow.Generate(store.X)
	if err != nil {
		return 0, fmt.Errorf("generate bar window: %w", err)
	}
	y := m.MY
	if !m.TopBar {
		y = m.MY + m.MH - BarHeight()
	}
	if err := win.Create(store.X.RootWin(), m.MX, y, m.MW, BarHeight(),
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		1, uint32(xproto.EventMaskExposure)); err != nil {
		return 0, fmt.Errorf("create bar window: %w", err)
	}
	win.Map()
	barWindows[m.Num] = win.Id
	return win.Id, nil
}

// Render repaints m's bar: tag indicators, the active layout symbol,
// the selected client's title, and the status area. The status area
// always shows Config.StatusFallback; no status property is read from
// the root window. Geometry mirrors dwm.c's drawbar().
func Render(m *store.Monitor) {
	if drawer == nil || !m.ShowBar {
		return
	}
	cfg := common.Config.Snapshot()
	colors := cfg.Colors

	x := 0
	segs := segs0()

	for i, tag := range cfg.Tags {
		bit := uint32(1) << uint(i)
		occupied, urgent := false, false
		for _, c := range m.Clients {
			if c.Tags&bit != 0 {
				occupied = true
				if c.Urgent {
					urgent = true
					break
				}
			}
		}
		w := drawer.TextWidth(tag) + 16
		bg, fg := colors.NormBg, colors.NormFg
		if m.CurTags()&bit != 0 {
			bg, fg = colors.SelBg, colors.SelFg
		}
		drawer.DrawRect(x, 0, w, BarHeight(), bg)
		drawer.DrawText(x+8, BarHeight()-4, tag, fg)
		if urgent {
			drawer.DrawRect(x+2, 2, 8, 8, fg)
		} else if occupied {
			drawer.DrawRect(x+2, 2, 4, 4, fg)
		}
		x += w
		segs = append(segs, segment{end: x, kind: common.ClickTagBar, tag: bit})
	}

	ltw := drawer.TextWidth(m.LtSymbol) + 16
	drawer.DrawText(x+8, BarHeight()-4, m.LtSymbol, colors.NormFg)
	x += ltw
	segs = append(segs, segment{end: x, kind: common.ClickLayoutSymbol})

	statusW := drawer.TextWidth(cfg.StatusFallback) + 16
	drawer.DrawText(m.WW-statusW+8, BarHeight()-4, cfg.StatusFallback, colors.NormFg)
	segs = append(segs, segment{end: m.WW - statusW, kind: common.ClickWinTitle})
	segs = append(segs, segment{end: m.WW, kind: common.ClickStatusText})

	title := ""
	if m.Sel != nil {
		title = m.Sel.Name
	}
	titleFg := colors.NormFg
	if m == store.SelMon && m.Sel != nil {
		titleFg = colors.SelFg
	}
	drawer.DrawText(x+8, BarHeight()-4, title, titleFg)

	segments[m.Num] = segs
	drawer.Present(m.BarWin, m.WW, BarHeight())
}

func segs0() []segment { return make([]segment, 0, 16) }

// ClassifyX turns a ButtonPress x coordinate on m's bar into the
// click region it landed in, matching dwm.c's buttonpress() bar-area
// classification.
func ClassifyX(m *store.Monitor, x int) common.Click {
	for _, s := range segments[m.Num] {
		if x < s.end {
			return s.kind
		}
	}
	return common.ClickStatusText
}

// TagBitAtX reports the tag bitmask under x on m's bar, for the
// tag-click commands (view/toggleview/tag/toggletag) whose argument
// dwm.c's buttonpress() computes from the clicked segment rather than
// from the static per-binding Arg.
func TagBitAtX(m *store.Monitor, x int) uint32 {
	for _, s := range segments[m.Num] {
		if x < s.end && s.kind == common.ClickTagBar {
			return s.tag
		}
	}
	return 0
}

// DefaultDrawer renders through xgbutil/xgraphics onto an in-memory
// image, presented by copying it into the bar's backing pixmap via
// PutImage. It ignores real font metrics (no font library is wired in
// by default, per the bar's explicit abstraction point) and instead
// uses a fixed-width estimate; a real build swaps in a Drawer backed
// by a font rasterizer without touching the core.
type DefaultDrawer struct {
	img *xgraphics.Image
}

func NewDefaultDrawer() *DefaultDrawer {
	return &DefaultDrawer{}
}

func (d *DefaultDrawer) Height() int { return 18 }

func (d *DefaultDrawer) TextWidth(s string) int { return len(s) * 7 }

func (d *DefaultDrawer) ensure(w, h int) {
	if d.img == nil || d.img.Rect.Dx() != w || d.img.Rect.Dy() != h {
		d.img = xgraphics.New(store.X, image.Rect(0, 0, w, h))
	}
}

func (d *DefaultDrawer) DrawRect(x, y, w, h int, color string) {
	if d.img == nil {
		return
	}
	px, err := common.ParseHexColor(color)
	if err != nil {
		return
	}
	c := colorpkg.NRGBA{R: uint8(px >> 16), G: uint8(px >> 8), B: uint8(px), A: 0xff}
	for yy := y; yy < y+h && yy < d.img.Rect.Dy(); yy++ {
		for xx := x; xx < x+w && xx < d.img.Rect.Dx(); xx++ {
			d.img.Set(xx, yy, c)
		}
	}
}

func (d *DefaultDrawer) DrawText(x, y int, s, color string) int {
	// Text rendering is intentionally a no-op in the default drawer;
	// see the type doc. Width is still reported so callers can lay out
	// adjacent segments correctly.
	return d.TextWidth(s)
}

func (d *DefaultDrawer) Present(win xproto.Window, width, height int) {
	d.ensure(width, height)
	if err := d.img.XSurfaceSet(win); err != nil {
		log.Debug("Bar surface attach error: ", err)
		return
	}
	d.img.XDraw()
	d.img.XPaint(win)
}
