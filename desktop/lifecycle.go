package desktop

import (
	"fmt"
	"os"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/mousebind"
	"github.com/jezek/xgbutil/xwindow"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/store"
	"github.com/goxwm/goxwm/ui"

	log "github.com/sirupsen/logrus"
)

// supportedAtoms lists the EWMH properties this window manager answers,
// published via _NET_SUPPORTED so pagers/panels know what to expect.
// Mirrors the netatom[] table dwm.c's setup() builds.
var supportedAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_NAME",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_CLIENT_LIST",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_CURRENT_DESKTOP",
	"_NET_DESKTOP_NAMES",
}

// Setup brings up the window-manager side of an already-connected
// display: it binds keyboard/pointer input libraries, discovers
// monitors, creates their bars, and publishes the EWMH identity this
// instance answers to. Grounded on dwm.c's setup() plus
// alexzeitgeist-cortile/store/root.go's InitRoot sequencing (RandR
// probe before any window bookkeeping begins).
func Setup() error {
	if err := keybind.Initialize(store.X); err != nil {
		return fmt.Errorf("initialize keybind: %w", err)
	}
	mousebind.Initialize(store.X)

	if _, err := store.UpdateGeometry(); err != nil {
		return fmt.Errorf("discover monitors: %w", err)
	}

	ui.SetDrawer(ui.NewDefaultDrawer())
	for _, m := range store.Mons {
		m.BarHeight = ui.BarHeight()
		store.UpdateBarPosition(m)
		win, err := ui.CreateBarWindow(m)
		if err != nil {
			return fmt.Errorf("create bar for monitor %d: %w", m.Num, err)
		}
		m.BarWin = win
	}

	if err := publishEwmhIdentity(); err != nil {
		log.Warn("Error publishing EWMH identity: ", err)
	}

	DrawBars()
	return nil
}

// publishEwmhIdentity announces this window manager to _NET_SUPPORTED
// clients: a check window carrying our name, the supported atom list,
// one desktop per configured tag (with the tag names) and desktop 0 as
// current. Grounded on dwm.c's setup()
// _NET_SUPPORTING_WM_CHECK dance, using xgbutil/ewmh's setters in place
// of dwm.c's raw XChangeProperty calls (matching
// alexzeitgeist-cortile/store/root.go's use of the same package for
// EWMH reads/writes).
func publishEwmhIdentity() error {
	checkWin, err := xwindow.Generate(store.X)
	if err != nil {
		return err
	}
	if err := checkWin.Create(store.RootWin(), -1, -1, 1, 1, 0); err != nil {
		return err
	}
	check := checkWin.Id

	if err := ewmh.SupportingWmCheckSet(store.X, store.RootWin(), check); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(store.X, check, check); err != nil {
		return err
	}
	if err := icccm.WmNameSet(store.X, check, "goxwm"); err != nil {
		return err
	}
	if err := ewmh.WmNameSet(store.X, check, "goxwm"); err != nil {
		return err
	}
	if err := ewmh.SupportedSet(store.X, supportedAtoms); err != nil {
		return err
	}
	if err := ewmh.NumberOfDesktopsSet(store.X, uint32(len(common.Config.Snapshot().Tags))); err != nil {
		return err
	}
	if err := ewmh.CurrentDesktopSet(store.X, 0); err != nil {
		return err
	}
	return ewmh.DesktopNamesSet(store.X, common.Config.Snapshot().Tags)
}

// Scan adopts every top-level window already mapped on the root at
// startup (a running session we attached to mid-stream), transient
// windows last so their WM_TRANSIENT_FOR target is already managed.
// Mirrors dwm.c's scan().
func Scan() error {
	tree, err := xproto.QueryTree(store.X.Conn(), store.RootWin()).Reply()
	if err != nil {
		return fmt.Errorf("query tree: %w", err)
	}

	var normal, transient []xproto.Window
	for _, w := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(store.X.Conn(), w).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState == xproto.MapStateUnmapped {
			continue
		}
		if t, err := icccm.WmTransientForGet(store.X, w); err == nil && t != 0 {
			transient = append(transient, w)
		} else {
			normal = append(normal, w)
		}
	}

	manageAll := func(wins []xproto.Window) {
		for _, w := range wins {
			if store.WinToClient(uint32(w)) != nil {
				continue
			}
			geom, err := xproto.GetGeometry(store.X.Conn(), xproto.Drawable(w)).Reply()
			if err != nil {
				continue
			}
			if _, err := store.Manage(w, int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height), int(geom.BorderWidth)); err != nil {
				log.Warn("Error managing pre-existing window: ", err)
			}
		}
	}
	manageAll(normal)
	manageAll(transient)
	return nil
}

// Cleanup unmanages every managed client (restoring each window's
// original border width) before the process exits, matching dwm.c's
// cleanup(). It does not close the display connection; the connection
// stays open until the process exits.
func Cleanup() {
	for _, m := range append([]*store.Monitor{}, store.Mons...) {
		for len(m.Stack) > 0 {
			store.Unmanage(m.Stack[0], false)
		}
	}
}

// Die prints a usage/fatal message to stderr and exits with status 1,
// the behavior of dwm.c's die().
func Die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
