package layout

import (
	"fmt"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/store"
)

// Register binds every compile-time configured layout name to its
// arranger function and hands it to store, which owns the Monitor
// struct these arrangers run against (§4.D). Call once at startup,
// after common.Config is finalized.
func Register() {
	byName := map[string]func(*store.Monitor){
		"tile":     Tile,
		"monocle":  Monocle,
		"floating": nil,
	}

	for _, lc := range common.Config.Snapshot().Layouts {
		arrange, ok := byName[lc.Name]
		if !ok {
			panic(fmt.Sprintf("layout: unknown layout name %q", lc.Name))
		}
		store.RegisterLayout(lc.Symbol, arrange)
	}
}

// ShowHide applies the visibility pass of arrange: show every visible
// client in stack (MRU) order, then hide every invisible one in
// reverse stack order. Two explicit passes over Monitor.Stack, not
// dwm.c's recursive showhide(c->snext), per the flat-slice data model
// (Design Note §9).
func ShowHide(m *store.Monitor) {
	for _, c := range m.Stack {
		if store.IsVisible(c) {
			show(c)
		}
	}
	for i := len(m.Stack) - 1; i >= 0; i-- {
		c := m.Stack[i]
		if !store.IsVisible(c) {
			hide(c)
		}
	}
}

func show(c *store.Client) {
	store.MoveWindow(c, c.X, c.Y)
	if (c.Mon.CurLayout().Arrange == nil || c.Floating) && !c.Fullscreen {
		store.Resize(c, c.X, c.Y, c.W, c.H, false)
	}
}

func hide(c *store.Client) {
	store.MoveWindow(c, -2*c.OuterWidth(), c.Y)
}

// Arrange runs the visibility pass and the active arranger for m (or
// every monitor when m is nil). A single monitor is then restacked;
// the every-monitor pass does not restack. Mirrors dwm.c's
// arrange()/arrangemon().
func Arrange(m *store.Monitor) {
	if m != nil {
		ShowHide(m)
		arrangeMon(m)
		store.Restack(m)
		return
	}
	for _, mon := range store.Mons {
		ShowHide(mon)
	}
	for _, mon := range store.Mons {
		arrangeMon(mon)
	}
}

func arrangeMon(m *store.Monitor) {
	lt := m.CurLayout()
	m.LtSymbol = lt.Symbol
	if lt.Arrange != nil {
		lt.Arrange(m)
	}
}

// Zoom promotes the selected client to the master slot (or, if it is
// already master, promotes the next tiled client), matching dwm.c's
// zoom(). A no-op under the floating layout or for a floating client.
func Zoom() {
	m := store.SelMon
	c := m.Sel
	if m.CurLayout().Arrange == nil || (c != nil && c.Floating) {
		return
	}
	if c == nextTiled(m.Clients, nil) {
		c = nextTiled(m.Clients, c)
		if c == nil {
			return
		}
	}
	Pop(c)
}

// Pop moves c to the head of its monitor's tile-order list, refocuses
// it and rearranges, matching dwm.c's pop().
func Pop(c *store.Client) {
	store.Detach(c)
	store.Attach(c)
	store.Focus(c)
	Arrange(c.Mon)
}

// nextTiled walks list, the tile-order Clients slice, returning the
// first visible non-floating client after (and not including) after.
// after == nil starts from the head, matching dwm.c's nexttiled.
func nextTiled(list []*store.Client, after *store.Client) *store.Client {
	start := 0
	if after != nil {
		for i, c := range list {
			if c == after {
				start = i + 1
				break
			}
		}
	}
	for _, c := range list[start:] {
		if !c.Floating && store.IsVisible(c) {
			return c
		}
	}
	return nil
}
