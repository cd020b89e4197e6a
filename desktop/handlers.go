package desktop

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/mousebind"
	"github.com/jezek/xgbutil/xprop"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/layout"
	"github.com/goxwm/goxwm/store"

	log "github.com/sirupsen/logrus"
)

// handleMapRequest adopts a not-yet-managed window, matching dwm.c's
// maprequest(): ignore override-redirect windows and windows already
// tracked, then Manage and rearrange.
func handleMapRequest(ev xproto.MapRequestEvent) {
	if store.WinToClient(uint32(ev.Window)) != nil {
		return
	}

	attrs, err := xproto.GetWindowAttributes(store.X.Conn(), ev.Window).Reply()
	if err != nil || attrs.OverrideRedirect {
		return
	}

	geom, err := xproto.GetGeometry(store.X.Conn(), xproto.Drawable(ev.Window)).Reply()
	if err != nil {
		return
	}

	c, err := store.Manage(ev.Window, int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height), int(geom.BorderWidth))
	if err != nil {
		log.Warn("Error managing window: ", err)
		return
	}
	layout.Arrange(c.Mon)
}

// handleDestroyNotify unmanages a client whose window is gone for
// good, matching dwm.c's destroynotify().
func handleDestroyNotify(ev xproto.DestroyNotifyEvent) {
	if c := store.WinToClient(uint32(ev.Window)); c != nil {
		mon := c.Mon
		store.Unmanage(c, true)
		layout.Arrange(mon)
	}
}

// handleUnmapNotify unmanages a client on a real (non-synthetic)
// unmap, matching dwm.c's unmapnotify (which otherwise leaves the
// withdrawn-state bookkeeping to the synthetic-event branch it
// doesn't need to act on here).
func handleUnmapNotify(ev xproto.UnmapNotifyEvent) {
	c := store.WinToClient(uint32(ev.Window))
	if c == nil {
		return
	}
	if ev.Event == store.RootWin() {
		// synthetic unmap sent on our behalf (e.g. iconify requests we
		// don't implement); nothing to reconcile.
		return
	}
	mon := c.Mon
	store.Unmanage(c, false)
	layout.Arrange(mon)
}

// handleConfigureRequest passes an unmanaged window's request through
// unchanged, applies a floating client's requested position and size
// (its border and stacking fields are ignored), and otherwise only
// acknowledges it with the client's existing geometry, matching
// dwm.c's configurerequest().
func handleConfigureRequest(ev xproto.ConfigureRequestEvent) {
	c := store.WinToClient(uint32(ev.Window))
	if c == nil {
		mask := uint16(0)
		values := []uint32{}
		if ev.ValueMask&xproto.ConfigWindowX != 0 {
			mask |= xproto.ConfigWindowX
			values = append(values, uint32(ev.X))
		}
		if ev.ValueMask&xproto.ConfigWindowY != 0 {
			mask |= xproto.ConfigWindowY
			values = append(values, uint32(ev.Y))
		}
		if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
			mask |= xproto.ConfigWindowWidth
			values = append(values, uint32(ev.Width))
		}
		if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
			mask |= xproto.ConfigWindowHeight
			values = append(values, uint32(ev.Height))
		}
		if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			mask |= xproto.ConfigWindowBorderWidth
			values = append(values, uint32(ev.BorderWidth))
		}
		if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
			mask |= xproto.ConfigWindowSibling
			values = append(values, uint32(ev.Sibling))
		}
		if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
			mask |= xproto.ConfigWindowStackMode
			values = append(values, uint32(ev.StackMode))
		}
		xproto.ConfigureWindow(store.X.Conn(), ev.Window, mask, values)
		return
	}

	if c.Floating || c.Mon.CurLayout().Arrange == nil {
		x, y, w, h := c.X, c.Y, c.W, c.H
		if ev.ValueMask&xproto.ConfigWindowX != 0 {
			x = c.Mon.MX + int(ev.X)
		}
		if ev.ValueMask&xproto.ConfigWindowY != 0 {
			y = c.Mon.MY + int(ev.Y)
		}
		if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
			w = int(ev.Width)
		}
		if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
			h = int(ev.Height)
		}
		store.Resize(c, x, y, w, h, false)
	} else {
		store.Configure(c)
	}
}

// handleConfigureNotify reacts to a root-window geometry change
// (RandR hotplug/resize), re-deriving monitors and rearranging,
// matching dwm.c's configurenotify().
func handleConfigureNotify(ev xproto.ConfigureNotifyEvent) {
	if ev.Window != store.RootWin() {
		return
	}
	changed, err := store.UpdateGeometry()
	if err != nil {
		log.Warn("Error updating monitor geometry: ", err)
		return
	}
	if changed {
		layout.Arrange(nil)
	}
}

// handlePropertyNotify reacts to WM_NORMAL_HINTS, WM_HINTS, WM_NAME /
// _NET_WM_NAME and _NET_WM_WINDOW_TYPE changes on a managed client,
// matching dwm.c's propertynotify().
func handlePropertyNotify(ev xproto.PropertyNotifyEvent) {
	if ev.Window == store.RootWin() {
		return
	}
	c := store.WinToClient(uint32(ev.Window))
	if c == nil {
		return
	}

	atomName, err := xprop.AtomName(store.X, ev.Atom)
	if err != nil {
		return
	}

	switch atomName {
	case "WM_NORMAL_HINTS":
		store.UpdateSizeHints(c)
	case "WM_HINTS":
		store.UpdateWMHints(c)
		if c.Urgent {
			// urgency handled by the bar renderer reading client state;
			// nothing to actively reconfigure here.
		}
	case "WM_NAME", "_NET_WM_NAME":
		store.UpdateTitle(c)
	case "_NET_WM_WINDOW_TYPE":
		store.UpdateWindowType(c)
	}
}

// handleClientMessage implements the two EWMH requests dwm.c answers
// directly: _NET_WM_STATE fullscreen add/remove/toggle, and
// _NET_ACTIVE_WINDOW (mark the requester urgent instead of stealing
// focus), matching dwm.c's clientmessage().
func handleClientMessage(ev xproto.ClientMessageEvent) {
	c := store.WinToClient(uint32(ev.Window))
	if c == nil {
		return
	}

	name, err := xproto.GetAtomName(store.X.Conn(), ev.Type).Reply()
	if err != nil {
		return
	}

	data := ev.Data.Data32
	switch name.Name {
	case "_NET_WM_STATE":
		if len(data) < 3 {
			return
		}
		stateAtom, err := xproto.GetAtomName(store.X.Conn(), xproto.Atom(data[1])).Reply()
		altAtom, err2 := xproto.GetAtomName(store.X.Conn(), xproto.Atom(data[2])).Reply()
		isFullscreen := (err == nil && stateAtom.Name == "_NET_WM_STATE_FULLSCREEN") ||
			(err2 == nil && altAtom.Name == "_NET_WM_STATE_FULLSCREEN")
		if isFullscreen {
			const (
				netWMStateRemove = 0
				netWMStateAdd    = 1
				netWMStateToggle = 2
			)
			want := data[0] == netWMStateAdd || (data[0] == netWMStateToggle && !c.Fullscreen)
			store.SetFullscreen(c, want)
		}
	case "_NET_ACTIVE_WINDOW":
		if c != c.Mon.Sel && !c.Urgent {
			store.SetUrgent(c, true)
		}
	}
}

// handleEnterNotify implements focus-follows-mouse: entering a
// client's window (or its monitor, via the root) focuses it, matching
// dwm.c's enternotify() (which additionally filters NotifyNormal /
// non-inferior crossings only).
func handleEnterNotify(ev xproto.EnterNotifyEvent) {
	if ev.Mode != xproto.NotifyModeNormal || ev.Detail == xproto.NotifyDetailInferior {
		if ev.Event != store.RootWin() {
			return
		}
	}

	c := store.WinToClient(uint32(ev.Event))
	m := store.WinToMon(uint32(ev.Event))
	if c != nil {
		m = c.Mon
	}
	if m != store.SelMon {
		store.Unfocus(store.SelMon.Sel, true)
		store.SelMon = m
	} else if c == nil || c == store.SelMon.Sel {
		return
	}
	store.Focus(c)
}

// handleFocusIn defends against a focus grab by another client
// stealing input focus out from under the WM's bookkeeping, matching
// dwm.c's focusin().
func handleFocusIn(ev xproto.FocusInEvent) {
	m := store.SelMon
	if m.Sel != nil && uint32(ev.Event) != uint32(m.Sel.Win) {
		store.SetFocus(m.Sel)
	}
}

// handleExpose redraws the bar on its own Expose, matching dwm.c's
// expose().
func handleExpose(ev xproto.ExposeEvent) {
	if ev.Count != 0 {
		return
	}
	for _, m := range store.Mons {
		if uint32(m.BarWin) == uint32(ev.Window) {
			DrawBar(m)
			return
		}
	}
}

// handleMappingNotify refreshes keybind's modifier map and regrabs
// keys when keyboard mapping changes underneath us.
func handleMappingNotify(ev xproto.MappingNotifyEvent) {
	if ev.Request != xproto.MappingKeyboard && ev.Request != xproto.MappingModifier {
		return
	}
	keybind.Initialize(store.X)
	if RegrabKeys != nil {
		RegrabKeys()
	}
}

// RegrabKeys is set by the input package so MappingNotify can ask it
// to redo every key grab against the refreshed modifier map.
var RegrabKeys func()

func handleButtonPress(ev xproto.ButtonPressEvent) {
	click, tagArg := classifyClick(ev)
	mod := mousebind.KeyMod(uint16(ev.State))
	if HandleButtonPress != nil {
		HandleButtonPress(click, mod, ev.Detail, tagArg)
	}
	xproto.AllowEvents(store.X.Conn(), xproto.AllowReplayPointer, ev.Time)
}

// classifyClick resolves the click region a ButtonPress landed in. For
// a ClickTagBar hit it also reports the clicked tag's bitmask, which
// dwm.c's buttonpress() computes from the segment rather than from the
// binding's own configured Arg.
func classifyClick(ev xproto.ButtonPressEvent) (common.Click, common.Arg) {
	for _, m := range store.Mons {
		if uint32(m.BarWin) == uint32(ev.Event) {
			click := classifyBarClick(m, int(ev.EventX))
			if click == common.ClickTagBar {
				return click, common.UintArg(uint(tagBitAtX(m, int(ev.EventX))))
			}
			return click, common.Arg{}
		}
	}
	if c := store.WinToClient(uint32(ev.Event)); c != nil {
		store.Focus(c)
		return common.ClickClientWin, common.Arg{}
	}
	return common.ClickRootWin, common.Arg{}
}

func handleKeyPress(ev xproto.KeyPressEvent) {
	keysym := keybind.KeysymGet(store.X, ev.Detail, uint16(ev.State))
	mod := keybind.KeyMod(uint16(ev.State))
	if HandleKeyPress != nil {
		HandleKeyPress(mod, uint32(keysym))
	}
}

func handleMotionNotify(ev xproto.MotionNotifyEvent) {
	if ev.Event != store.RootWin() {
		return
	}
	m := store.RectToMon(int(ev.RootX), int(ev.RootY), 1, 1)
	if m != nil && m != store.SelMon {
		store.Unfocus(store.SelMon.Sel, true)
		store.SelMon = m
		store.Focus(nil)
	}
}
