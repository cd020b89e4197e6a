package store

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"

	"github.com/goxwm/goxwm/common"

	log "github.com/sirupsen/logrus"
)

// Focus makes c the selected client: it falls back to the top of the
// current monitor's stack when c is nil or no longer visible,
// unfocuses whatever was previously selected, clears urgency, moves c
// to the head of the focus-history stack, recolors its border and
// hands it X input focus. Passing nil with an empty stack clears
// selection entirely (root gets input focus). Mirrors dwm.c's focus().
func Focus(c *Client) {
	if c == nil || !IsVisible(c) {
		c = nil
		for _, s := range SelMon.Stack {
			if IsVisible(s) {
				c = s
				break
			}
		}
	}

	if SelMon.Sel != nil && SelMon.Sel != c {
		Unfocus(SelMon.Sel, false)
	}

	if c != nil {
		if c.Mon != SelMon {
			SelMon = c.Mon
		}
		if c.Urgent {
			SetUrgent(c, false)
		}
		DetachStack(c)
		AttachStack(c)
		grabButtons(c, true)
		setBorder(c, common.Config.Snapshot().Colors.SelBorder)
		SetFocus(c)
	} else {
		xproto.SetInputFocus(X.Conn(), xproto.InputFocusPointerRoot, RootWin(), xproto.TimeCurrentTime)
		ewmh.ActiveWindowSet(X, 0)
	}

	SelMon.Sel = c
}

// Unfocus strips c's input focus and border highlight. setFocus mirrors
// dwm.c's unfocus(c, setfocus): when true, input focus reverts to the
// root window (used when nothing will immediately claim it).
func Unfocus(c *Client, setFocus bool) {
	if c == nil {
		return
	}
	grabButtons(c, false)
	setBorder(c, common.Config.Snapshot().Colors.NormBorder)
	if setFocus {
		xproto.SetInputFocus(X.Conn(), xproto.InputFocusPointerRoot, RootWin(), xproto.TimeCurrentTime)
		ewmh.ActiveWindowSet(X, 0)
	}
}

// SetFocus hands c input focus and publishes it as _NET_ACTIVE_WINDOW,
// unless c opted out via WM_HINTS input=false, then requests
// WM_TAKE_FOCUS. Mirrors dwm.c's setfocus().
func SetFocus(c *Client) {
	if !c.NeverFocus {
		xproto.SetInputFocus(X.Conn(), xproto.InputFocusPointerRoot, c.Win, xproto.TimeCurrentTime)
		ewmh.ActiveWindowSet(X, c.Win)
	}
	SendEvent(c, "WM_TAKE_FOCUS")
}

func setBorder(c *Client, hexColor string) {
	pixel, err := colorPixel(hexColor)
	if err != nil {
		return
	}
	xproto.ChangeWindowAttributes(X.Conn(), c.Win, xproto.CwBorderPixel, []uint32{pixel})
}

// SetUrgent toggles c's WM_HINTS urgency bit.
func SetUrgent(c *Client, urgent bool) {
	wh, err := icccm.WmHintsGet(X, c.Win)
	if err != nil || wh == nil {
		wh = &icccm.Hints{}
	}
	if urgent {
		wh.Flags |= icccm.HintUrgency
	} else {
		wh.Flags &^= icccm.HintUrgency
	}
	icccm.WmHintsSet(X, c.Win, wh)
	c.Urgent = urgent
}

// lockModifiers are the ignorable combinations a grab must be
// duplicated under so it still fires with Caps Lock and/or Num Lock
// held, matching dwm.c's grabbuttons()/grabkeys() modifiers[] table.
// Num Lock conventionally sits on Mod2; unlike dwm.c this doesn't probe
// the live modifier map (no XGetModifierMapping wrapper is wired in),
// so a nonstandard Num Lock binding won't be covered.
var lockModifiers = []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2}

func grabButtons(c *Client, focused bool) {
	xproto.UngrabButton(X.Conn(), xproto.ButtonIndexAny, xproto.ModMaskAny, c.Win)
	if !focused {
		xproto.GrabButton(X.Conn(), false, c.Win,
			uint16(xproto.EventMaskButtonPress), xproto.GrabModeSync, xproto.GrabModeSync,
			0, 0, xproto.ButtonIndexAny, uint16(xproto.ModMaskAny))
	}

	for _, b := range common.Config.Snapshot().Buttons {
		if b.Click != common.ClickClientWin {
			continue
		}
		for _, lock := range lockModifiers {
			xproto.GrabButton(X.Conn(), false, c.Win,
				uint16(xproto.EventMaskButtonPress), xproto.GrabModeAsync, xproto.GrabModeSync,
				0, 0, xproto.Button(b.Button), b.Mod|lock)
		}
	}
}

// Restack raises the selected client when it floats or the layout has
// no arranger, and otherwise stacks every visible tiled client
// immediately below the bar window in focus-history order. Mirrors
// dwm.c's restack(); it does not draw the bar.
func Restack(m *Monitor) {
	if m.Sel == nil {
		return
	}

	if m.Sel.Floating || m.CurLayout().Arrange == nil {
		raise(m.Sel)
	}

	if m.CurLayout().Arrange == nil {
		return
	}

	sibling := m.BarWin
	for _, c := range m.Stack {
		if c.Floating || !IsVisible(c) {
			continue
		}
		xproto.ConfigureWindow(X.Conn(), c.Win,
			xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
			[]uint32{uint32(sibling), uint32(xproto.StackModeBelow)})
		sibling = c.Win
	}
}

// colorPixel resolves a "#rrggbb" config color to a truecolor pixel
// value. Border colors are set directly this way; the bar's own
// rendering goes through the abstract Drawer (ui package) instead.
func colorPixel(hex string) (uint32, error) {
	v, err := common.ParseHexColor(hex)
	if err != nil {
		log.WithField("color", hex).Warn("Invalid color, using black")
		return 0, err
	}
	return v, nil
}
