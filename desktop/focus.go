package desktop

import (
	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/store"
)

// FocusStack moves selection to the next (dir > 0) or previous
// (dir < 0) visible client in tile order, wrapping around the ends.
// Declines when the selected client is a locked fullscreen window.
// Mirrors dwm.c's focusstack().
func FocusStack(dir int) {
	m := store.SelMon
	if m.Sel == nil || (m.Sel.Fullscreen && common.Config.Snapshot().LockFullscreen) {
		return
	}

	idx := -1
	for i, c := range m.Clients {
		if c == m.Sel {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	var next *store.Client
	n := len(m.Clients)
	if dir > 0 {
		for i := 1; i <= n; i++ {
			c := m.Clients[(idx+i)%n]
			if store.IsVisible(c) {
				next = c
				break
			}
		}
	} else {
		for i := 1; i <= n; i++ {
			c := m.Clients[(idx-i+n*2)%n]
			if store.IsVisible(c) {
				next = c
				break
			}
		}
	}

	if next != nil {
		store.Focus(next)
		store.Restack(m)
	}
}

// FocusMon switches selection to the next (dir > 0) or previous
// (dir < 0) monitor in Mons order, wrapping around. Mirrors dwm.c's
// focusmon()/dirtomon().
func FocusMon(dir int) {
	if len(store.Mons) < 2 {
		return
	}

	idx := 0
	for i, m := range store.Mons {
		if m == store.SelMon {
			idx = i
			break
		}
	}

	n := len(store.Mons)
	var target *store.Monitor
	if dir > 0 {
		target = store.Mons[(idx+1)%n]
	} else {
		target = store.Mons[(idx-1+n)%n]
	}
	if target == store.SelMon {
		return
	}

	store.Unfocus(store.SelMon.Sel, false)
	store.SelMon = target
	store.Focus(nil)
}
