package store

import (
	"time"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/motif"

	"github.com/goxwm/goxwm/common"

	log "github.com/sirupsen/logrus"
)

// Manage adopts window w as a new Client: it reads the ICCCM hints
// needed to seed geometry and floating state, applies matching rules,
// reparents it onto its target monitor's lists, maps and focuses it.
// It does not arrange; callers do. Grounded on dwm.c's manage(), adapted to xgbutil's
// attribute/geometry accessors.
func Manage(w xproto.Window, x, y, width, height, borderWidth int) (*Client, error) {
	c := &Client{
		Win:         w,
		X:           x,
		Y:           y,
		W:           width,
		H:           height,
		OldX:        x,
		OldY:        y,
		OldW:        width,
		OldH:        height,
		BorderWidth: common.Config.Snapshot().BorderWidth,
		OldBorder:   borderWidth,
		Mon:         SelMon,
		Created:     time.Now(),
	}

	UpdateTitle(c)

	if t, err := icccm.WmTransientForGet(X, w); err == nil && t != 0 {
		if parent := WinToClient(uint32(t)); parent != nil {
			c.Mon = parent.Mon
			c.Floating = true
			c.Tags = parent.Tags
		}
	} else {
		UpdateWindowType(c)
		ApplyRules(c)
	}

	if c.Tags == 0 {
		c.Tags = c.Mon.CurTags()
	}

	UpdateSizeHints(c)
	UpdateWMHints(c)

	if c.X+c.OuterWidth() > c.Mon.MX+c.Mon.MW {
		c.X = c.Mon.MX + c.Mon.MW - c.OuterWidth()
	}
	if c.Y+c.OuterHeight() > c.Mon.MY+c.Mon.MH {
		c.Y = c.Mon.MY + c.Mon.MH - c.OuterHeight()
	}
	c.X = max(c.Mon.MX, c.X)
	c.Y = max(c.Mon.MY, c.Y)

	xproto.ConfigureWindow(X.Conn(), w, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(c.BorderWidth)})
	xproto.ChangeWindowAttributes(X.Conn(), w, xproto.CwBorderPixel, []uint32{0})
	Configure(c)

	SetClientState(c, icccm.StateNormal)
	stripMotifDecorations(c)

	Attach(c)
	AttachStack(c)

	xproto.MapWindow(X.Conn(), w)

	xproto.ChangeWindowAttributes(X.Conn(), w, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
			xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify),
	})

	updateClientList()
	Focus(c)

	log.WithFields(log.Fields{"win": w, "class": c.Name, "tags": c.Tags}).Info("Managed client")
	return c, nil
}

// Unmanage removes c from its monitor's lists and restores its border
// width unless the window is already gone (dwm.c's unmanage, which
// distinguishes a clean UnmapNotify from a forced DestroyNotify).
func Unmanage(c *Client, destroyed bool) {
	Detach(c)
	DetachStack(c)

	if !destroyed {
		xproto.ConfigureWindow(X.Conn(), c.Win, xproto.ConfigWindowBorderWidth,
			[]uint32{uint32(c.OldBorder)})
		xproto.UngrabButton(X.Conn(), xproto.ButtonIndexAny, xproto.ModMaskAny, c.Win)
		SetClientState(c, icccm.StateWithdrawn)
	}

	updateClientList()

	log.WithField("win", c.Win).Info("Unmanaged client")
}

// updateClientList republishes _NET_CLIENT_LIST from every monitor's
// client list, matching dwm.c's updateclientlist() (rebuilt wholesale
// on each change rather than incrementally, same as the C source).
func updateClientList() {
	var wins []xproto.Window
	for _, m := range Mons {
		for _, c := range m.Clients {
			wins = append(wins, c.Win)
		}
	}
	ewmh.ClientListSet(X, wins)
}

// stripMotifDecorations requests the client not draw its own title
// bar/border: this window manager, like dwm.c, owns the border itself
// (c.BorderWidth) and never asks a reparenting WM underneath it to add
// decoration on top. Grounded on the teacher's MOTIF_WM_HINTS
// read/write pair, inverted from its DecorationAll/DecorationNone
// toggle (used there to restore a floated client's title bar) to
// always request DecorationNone at manage time.
func stripMotifDecorations(c *Client) {
	mhints, err := motif.WmHintsGet(X, c.Win)
	if err != nil || mhints == nil {
		mhints = &motif.Hints{}
	}
	if motif.Decor(mhints) {
		mhints.Flags |= motif.HintDecorations
		mhints.Decoration = motif.DecorationNone
		motif.WmHintsSet(X, c.Win, mhints)
	}
}

// Configure sends a synthetic ConfigureNotify so clients that rely on
// it (rather than the real resize reply) learn their geometry, per
// ICCCM 4.1.5.
func Configure(c *Client) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            c.Win,
		Window:           c.Win,
		X:                int16(c.X),
		Y:                int16(c.Y),
		Width:            uint16(c.W),
		Height:           uint16(c.H),
		BorderWidth:      uint16(c.BorderWidth),
		OverrideRedirect: false,
	}
	xproto.SendEvent(X.Conn(), false, c.Win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// UpdateSizeHints reads WM_NORMAL_HINTS and refreshes c.Hints,
// converting the aspect-ratio numerator/denominator pairs to the
// floats ApplySizeHints works with. Mirrors dwm.c's
// updatesizehints().
func UpdateSizeHints(c *Client) {
	nh, err := icccm.WmNormalHintsGet(X, c.Win)
	if err != nil || nh == nil {
		c.Hints = SizeHints{Valid: true}
		c.Fixed = false
		return
	}

	h := SizeHints{Valid: true}
	if nh.Flags&icccm.SizeHintPBaseSize != 0 {
		h.BaseWidth, h.BaseHeight = int(nh.BaseWidth), int(nh.BaseHeight)
	} else if nh.Flags&icccm.SizeHintPMinSize != 0 {
		h.BaseWidth, h.BaseHeight = int(nh.MinWidth), int(nh.MinHeight)
	}
	if nh.Flags&icccm.SizeHintPResizeInc != 0 {
		h.IncWidth, h.IncHeight = int(nh.WidthInc), int(nh.HeightInc)
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		h.MaxWidth, h.MaxHeight = int(nh.MaxWidth), int(nh.MaxHeight)
	}
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		h.MinWidth, h.MinHeight = int(nh.MinWidth), int(nh.MinHeight)
	} else if nh.Flags&icccm.SizeHintPBaseSize != 0 {
		h.MinWidth, h.MinHeight = int(nh.BaseWidth), int(nh.BaseHeight)
	}
	if nh.Flags&icccm.SizeHintPAspect != 0 && nh.MinAspectNum != 0 && nh.MaxAspectDen != 0 {
		h.MinAspect = float64(nh.MinAspectDen) / float64(nh.MinAspectNum)
		h.MaxAspect = float64(nh.MaxAspectNum) / float64(nh.MaxAspectDen)
	}

	c.Hints = h
	c.Fixed = h.MaxWidth > 0 && h.MaxHeight > 0 && h.MaxWidth == h.MinWidth && h.MaxHeight == h.MinHeight
	c.Floating = c.Floating || c.Fixed
}

// UpdateWMHints reads WM_HINTS for urgency and input-model flags.
// Urgency is only cleared while c is the selected client, matching
// dwm.c's asymmetric seturgent/updatewmhints handling.
func UpdateWMHints(c *Client) {
	wh, err := icccm.WmHintsGet(X, c.Win)
	if err != nil || wh == nil {
		return
	}

	if c == c.Mon.Sel && wh.Flags&icccm.HintUrgency != 0 {
		wh.Flags &^= icccm.HintUrgency
		icccm.WmHintsSet(X, c.Win, wh)
	} else {
		c.Urgent = wh.Flags&icccm.HintUrgency != 0
	}

	if wh.Flags&icccm.HintInput != 0 {
		c.NeverFocus = !wh.Input
	} else {
		c.NeverFocus = false
	}
}

// UpdateTitle reads _NET_WM_NAME (falling back to WM_NAME, then
// "broken"), matching dwm.c's updatetitle / gettextprop chain.
func UpdateTitle(c *Client) {
	name, err := ewmh.WmNameGet(X, c.Win)
	if err != nil || name == "" {
		name, err = icccm.WmNameGet(X, c.Win)
	}
	if err != nil || name == "" {
		name = "broken"
	}
	if len(name) > 256 {
		name = name[:256]
	}
	c.Name = name
}

// UpdateWindowType applies _NET_WM_STATE_FULLSCREEN and
// _NET_WM_WINDOW_TYPE_DIALOG at manage time (and again on a later
// PropertyNotify), matching dwm.c's updatewindowtype().
func UpdateWindowType(c *Client) {
	state, _ := ewmh.WmStateGet(X, c.Win)
	wtype, _ := ewmh.WmWindowTypeGet(X, c.Win)

	if common.IsInList("_NET_WM_STATE_FULLSCREEN", state) {
		SetFullscreen(c, true)
	}
	if common.IsInList("_NET_WM_WINDOW_TYPE_DIALOG", wtype) {
		c.Floating = true
	}
}

// SetFullscreen toggles c's fullscreen geometry, saving/restoring the
// pre-fullscreen floating flag and border the way dwm.c's
// setfullscreen() does across the round trip.
func SetFullscreen(c *Client, fullscreen bool) {
	if fullscreen && !c.Fullscreen {
		ewmh.WmStateReq(X, c.Win, ewmh.StateAdd, "_NET_WM_STATE_FULLSCREEN")
		c.Fullscreen = true
		c.OldState = c.Floating
		c.OldBorder = c.BorderWidth
		c.BorderWidth = 0
		c.Floating = true
		ResizeClient(c, c.Mon.MX, c.Mon.MY, c.Mon.MW, c.Mon.MH)
		raise(c)
	} else if !fullscreen && c.Fullscreen {
		ewmh.WmStateReq(X, c.Win, ewmh.StateRemove, "_NET_WM_STATE_FULLSCREEN")
		c.Fullscreen = false
		c.Floating = c.OldState
		c.BorderWidth = c.OldBorder
		c.X, c.Y, c.W, c.H = c.OldX, c.OldY, c.OldW, c.OldH
		ResizeClient(c, c.X, c.Y, c.W, c.H)
		if c.Mon.CurLayout().Arrange != nil {
			c.Mon.CurLayout().Arrange(c.Mon)
		}
	}
}

// ResizeClient applies a geometry directly to c and the X window,
// bypassing size-hint clamping (callers that need hints applied go
// through Resize). Mirrors dwm.c's resizeclient().
func ResizeClient(c *Client, x, y, w, h int) {
	c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
	c.X, c.Y, c.W, c.H = x, y, w, h
	xproto.ConfigureWindow(X.Conn(), c.Win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(x), uint32(y), uint32(w), uint32(h), uint32(c.BorderWidth)})
	Configure(c)
}

func raise(c *Client) {
	xproto.ConfigureWindow(X.Conn(), c.Win, xproto.ConfigWindowStackMode,
		[]uint32{uint32(xproto.StackModeAbove)})
}

// SendEvent delivers a WM_PROTOCOLS client message if the client
// advertises support for the named protocol atom (e.g.
// WM_DELETE_WINDOW), reporting whether it was sent. Grounded on
// dwm.c's sendevent().
func SendEvent(c *Client, protocol string) bool {
	protocols, err := icccm.WmProtocolsGet(X, c.Win)
	if err != nil {
		return false
	}
	if !common.IsInList(protocol, protocols) {
		return false
	}

	atom, err := xproto.InternAtom(X.Conn(), true, uint16(len("WM_PROTOCOLS")), "WM_PROTOCOLS").Reply()
	if err != nil {
		return false
	}
	patom, err := xproto.InternAtom(X.Conn(), true, uint16(len(protocol)), protocol).Reply()
	if err != nil {
		return false
	}

	var ev xproto.ClientMessageEvent
	ev.Format = 32
	ev.Window = c.Win
	ev.Type = atom.Atom
	ev.Data.SetData32([]uint32{uint32(patom.Atom), uint32(xproto.TimeCurrentTime), 0, 0, 0})

	xproto.SendEvent(X.Conn(), false, c.Win, xproto.EventMaskNoEvent, string(ev.Bytes()))
	return true
}

// SetClientState sets the ICCCM WM_STATE property (Withdrawn, Normal,
// Iconic), matching dwm.c's setclientstate().
func SetClientState(c *Client, state int) {
	icccm.WmStateSet(X, c.Win, &icccm.WmState{State: state})
}
