package input

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/keybind"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/desktop"
	"github.com/goxwm/goxwm/store"

	log "github.com/sirupsen/logrus"
)

// Init wires this package into desktop's event dispatcher and performs
// the initial key/button grabs. Call once after desktop.Setup.
func Init() {
	desktop.HandleKeyPress = dispatchKey
	desktop.HandleButtonPress = dispatchButton
	desktop.RegrabKeys = GrabKeys

	GrabKeys()
	common.Config.OnReload(GrabKeys)
}

// dispatchKey resolves a cleaned modifier+keysym pair to a configured
// KeyBinding and runs its command, matching dwm.c's keypress().
func dispatchKey(mod uint16, keysym uint32) {
	for _, kb := range common.Config.Snapshot().Keys {
		if kb.Keysym == keysym && kb.Mod == cleanMask(mod) {
			if cmd, ok := Lookup(kb.Command); ok {
				cmd(kb.Arg)
			} else {
				log.Warn("Unknown command bound to key: ", kb.Command)
			}
			return
		}
	}
}

// dispatchButton resolves a click region + cleaned modifier + button to
// a configured ButtonBinding and runs its command, matching dwm.c's
// buttonpress(). For a tag-bar click, tagArg (the clicked tag's
// bitmask, resolved by the event handler from the click position)
// takes the place of the binding's own static Arg, the same override
// dwm.c's buttonpress() applies before dispatching.
func dispatchButton(click common.Click, mod uint16, button uint8, tagArg common.Arg) {
	for _, bb := range common.Config.Snapshot().Buttons {
		if bb.Click == click && bb.Button == button && bb.Mod == cleanMask(mod) {
			if cmd, ok := Lookup(bb.Command); ok {
				if click == common.ClickTagBar {
					cmd(tagArg)
				} else {
					cmd(bb.Arg)
				}
			} else {
				log.Warn("Unknown command bound to button: ", bb.Command)
			}
			return
		}
	}
}

// cleanMask strips the lock-modifier noise (Caps Lock, Num Lock, Scroll
// Lock) a binding was never meant to care about, matching dwm.c's
// CLEANMASK macro.
func cleanMask(mod uint16) uint16 {
	return mod &^ (xproto.ModMaskLock | xproto.ModMask2 | xproto.ModMask3) & 0xff
}

// GrabKeys regrabs every configured KeyBinding on the root window,
// duplicated across the lock-modifier combinations grabButtons also
// covers. Mirrors dwm.c's grabkeys(), called at startup and again on
// MappingNotify/config reload.
func GrabKeys() {
	xproto.UngrabKey(store.X.Conn(), xproto.GrabAny, store.RootWin(), xproto.ModMaskAny)

	for _, kb := range common.Config.Snapshot().Keys {
		code := keybind.KeysymToKeycode(store.X, kb.Keysym)
		if code == 0 {
			continue
		}
		for _, lock := range lockModifiers() {
			xproto.GrabKey(store.X.Conn(), true, store.RootWin(), kb.Mod|lock, code,
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}
	}
}

// lockModifiers mirrors store's private table (grabButtons); kept as a
// small duplicate here rather than exporting store internals for one
// four-entry slice.
func lockModifiers() []uint16 {
	return []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2}
}
