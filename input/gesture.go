package input

import (
	"time"

	"github.com/jezek/xgb/xproto"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/desktop"
	"github.com/goxwm/goxwm/store"
)

// pointerMask is the set of events a move/resize grab needs to see to
// track the pointer and notice its release, matching dwm.c's MOUSEMASK.
const pointerMask = uint32(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)

// motionInterval throttles in-drag geometry updates to roughly 60Hz,
// like dwm.c's movemouse()/resizemouse() (1000 / 60) check. The gap is
// measured with the local clock when each MotionNotify is handled, not
// from the events' server timestamps.
const motionInterval = time.Second / 60

// cmdMoveMouse runs a modal drag loop that repositions the selected
// client under the pointer until the initiating button is released,
// snapping to the work-area edges and auto-floating a tiled client
// that moves far enough. Mirrors dwm.c's movemouse().
func cmdMoveMouse(common.Arg) {
	c := store.SelMon.Sel
	if c == nil || c.Fullscreen {
		return
	}
	store.Restack(store.SelMon)

	ocx, ocy := c.X, c.Y
	if !grabPointer() {
		return
	}
	defer ungrabPointer()

	startX, startY, ok := rootPointer()
	if !ok {
		return
	}

	snap := common.Config.Snapshot().SnapDistance
	var lastMotion time.Time
	for {
		ev, xerr := store.X.Conn().WaitForEvent()
		if xerr != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.ButtonReleaseEvent:
			migrateMon(c)
			return
		case xproto.MotionNotifyEvent:
			now := time.Now()
			if now.Sub(lastMotion) < motionInterval {
				continue
			}
			lastMotion = now

			m := store.SelMon
			nx := ocx + (int(e.RootX) - startX)
			ny := ocy + (int(e.RootY) - startY)
			nx, ny = snapToEdges(m, c, nx, ny, snap)

			if !c.Floating && m.CurLayout().Arrange != nil &&
				(abs(nx-c.X) > snap || abs(ny-c.Y) > snap) {
				cmdToggleFloating(common.Arg{})
			}
			if m.CurLayout().Arrange == nil || c.Floating {
				store.Resize(c, nx, ny, c.W, c.H, true)
			}
		case xproto.ConfigureRequestEvent, xproto.ExposeEvent, xproto.MapRequestEvent:
			desktop.Dispatch(ev)
		}
	}
}

// cmdResizeMouse runs a modal drag loop that resizes the selected
// client from its bottom-right corner, mirroring dwm.c's
// resizemouse() (minus its XWarpPointer cursor placement, which needs
// no grounded equivalent here).
func cmdResizeMouse(common.Arg) {
	c := store.SelMon.Sel
	if c == nil || c.Fullscreen {
		return
	}
	store.Restack(store.SelMon)

	if !grabPointer() {
		return
	}
	defer ungrabPointer()

	snap := common.Config.Snapshot().SnapDistance
	var lastMotion time.Time
	for {
		ev, xerr := store.X.Conn().WaitForEvent()
		if xerr != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.ButtonReleaseEvent:
			migrateMon(c)
			return
		case xproto.MotionNotifyEvent:
			now := time.Now()
			if now.Sub(lastMotion) < motionInterval {
				continue
			}
			lastMotion = now

			m := store.SelMon
			nw := max(int(e.RootX)-c.X-2*c.BorderWidth+1, 1)
			nh := max(int(e.RootY)-c.Y-2*c.BorderWidth+1, 1)

			if !c.Floating && m.CurLayout().Arrange != nil &&
				(abs(nw-c.W) > snap || abs(nh-c.H) > snap) {
				cmdToggleFloating(common.Arg{})
			}
			if m.CurLayout().Arrange == nil || c.Floating {
				store.Resize(c, c.X, c.Y, nw, nh, true)
			}
		case xproto.ConfigureRequestEvent, xproto.ExposeEvent, xproto.MapRequestEvent:
			desktop.Dispatch(ev)
		}
	}
}

// migrateMon re-homes c onto whichever monitor now covers most of its
// geometry after a drag, and refocuses it there. Mirrors dwm.c's
// movemouse()/resizemouse() tail end: "if ((m = recttomon(c->x, c->y,
// c->w, c->h)) != selmon) { sendmon(c, m); selmon = m; focus(NULL); }".
func migrateMon(c *store.Client) {
	if m := store.RectToMon(c.X, c.Y, c.W, c.H); m != nil && m != c.Mon {
		sendMon(c, m)
		store.SelMon = m
		store.Focus(nil)
	}
}

func grabPointer() bool {
	reply, err := xproto.GrabPointer(store.X.Conn(), false, store.RootWin(), uint16(pointerMask),
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0, xproto.TimeCurrentTime).Reply()
	return err == nil && reply != nil && reply.Status == xproto.GrabStatusSuccess
}

func ungrabPointer() {
	xproto.UngrabPointer(store.X.Conn(), xproto.TimeCurrentTime)
}

func rootPointer() (x, y int, ok bool) {
	p, err := store.PointerPosition()
	if err != nil {
		return 0, 0, false
	}
	return p.X, p.Y, true
}

// snapToEdges pulls a candidate top-left corner onto m's work-area
// edges when within snap pixels, matching dwm.c's movemouse() snap
// logic.
func snapToEdges(m *store.Monitor, c *store.Client, nx, ny, snap int) (int, int) {
	if abs(m.WX-nx) < snap {
		nx = m.WX
	} else if abs((m.WX+m.WW)-(nx+c.OuterWidth())) < snap {
		nx = m.WX + m.WW - c.OuterWidth()
	}
	if abs(m.WY-ny) < snap {
		ny = m.WY
	} else if abs((m.WY+m.WH)-(ny+c.OuterHeight())) < snap {
		ny = m.WY + m.WH - c.OuterHeight()
	}
	return nx, ny
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
