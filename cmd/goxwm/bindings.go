package main

import (
	"github.com/jezek/xgb/xproto"

	"github.com/goxwm/goxwm/common"
)

// X11 keysym values for the small set of keys bound below, taken
// straight from X11/keysymdef.h (alphanumerics, space, comma and period
// share their ASCII code points; Tab and Return use codes in the
// 0xff00 function-key range).
const (
	xkReturn = 0xff0d
	xkTab    = 0xff09
	xkSpace  = 0x0020
	xkComma  = 0x002c
	xkPeriod = 0x002e
	xk0      = 0x0030
	xk1      = 0x0031
	xkC      = 0x0063
	xkD      = 0x0064
	xkF      = 0x0066
	xkH      = 0x0068
	xkI      = 0x0069
	xkJ      = 0x006a
	xkK      = 0x006b
	xkL      = 0x006c
	xkM      = 0x006d
	xkQ      = 0x0071
	xkT      = 0x0074
)

const (
	modSuper = uint16(xproto.ModMask4)
	modShift = uint16(xproto.ModMaskShift)
)

// defaultKeys mirrors dwm.c's config.h keys[] table: Super held for
// every binding (Super+Shift for tag, tagmon, togglefloating and quit).
// No terminal/launcher spawn bindings are included, and the TOML
// overlay does not carry key bindings.
func defaultKeys() []common.KeyBinding {
	keys := []common.KeyBinding{
		{Mod: modSuper, Keysym: xkJ, Command: "focusstack", Arg: common.IntArg(1)},
		{Mod: modSuper, Keysym: xkK, Command: "focusstack", Arg: common.IntArg(-1)},
		{Mod: modSuper, Keysym: xkI, Command: "incnmaster", Arg: common.IntArg(1)},
		{Mod: modSuper, Keysym: xkD, Command: "incnmaster", Arg: common.IntArg(-1)},
		{Mod: modSuper, Keysym: xkH, Command: "setmfact", Arg: common.FloatArg(-0.05)},
		{Mod: modSuper, Keysym: xkL, Command: "setmfact", Arg: common.FloatArg(0.05)},
		{Mod: modSuper, Keysym: xkReturn, Command: "zoom"},
		{Mod: modSuper, Keysym: xkTab, Command: "view", Arg: common.UintArg(0)},
		{Mod: modSuper, Keysym: xkC, Command: "killclient"},
		{Mod: modSuper, Keysym: xkT, Command: "setlayout", Arg: common.PtrArg("[]=")},
		{Mod: modSuper, Keysym: xkF, Command: "setlayout", Arg: common.PtrArg("><>")},
		{Mod: modSuper, Keysym: xkM, Command: "setlayout", Arg: common.PtrArg("[M]")},
		{Mod: modSuper, Keysym: xkSpace, Command: "setlayout"},
		{Mod: modSuper | modShift, Keysym: xkSpace, Command: "togglefloating"},
		{Mod: modSuper, Keysym: xk0, Command: "view", Arg: common.UintArg(^uint(0))},
		{Mod: modSuper | modShift, Keysym: xk0, Command: "tag", Arg: common.UintArg(^uint(0))},
		{Mod: modSuper, Keysym: xkComma, Command: "focusmon", Arg: common.IntArg(-1)},
		{Mod: modSuper, Keysym: xkPeriod, Command: "focusmon", Arg: common.IntArg(1)},
		{Mod: modSuper | modShift, Keysym: xkComma, Command: "tagmon", Arg: common.IntArg(-1)},
		{Mod: modSuper | modShift, Keysym: xkPeriod, Command: "tagmon", Arg: common.IntArg(1)},
		{Mod: modSuper | modShift, Keysym: xkQ, Command: "quit"},
	}

	for i := 0; i < 9; i++ {
		tagBit := uint(1) << uint(i)
		keys = append(keys,
			common.KeyBinding{Mod: modSuper, Keysym: uint32(xk1 + i), Command: "view", Arg: common.UintArg(tagBit)},
			common.KeyBinding{Mod: modSuper | modShift, Keysym: uint32(xk1 + i), Command: "tag", Arg: common.UintArg(tagBit)},
		)
	}
	return keys
}

// defaultButtons mirrors dwm.c's config.h buttons[] table: left-drag to
// move, right-drag to resize, both modified by Super so plain clicks
// still reach the client.
func defaultButtons() []common.ButtonBinding {
	return []common.ButtonBinding{
		{Click: common.ClickClientWin, Mod: modSuper, Button: 1, Command: "movemouse"},
		{Click: common.ClickClientWin, Mod: modSuper, Button: 3, Command: "resizemouse"},
		{Click: common.ClickLayoutSymbol, Mod: 0, Button: 1, Command: "setlayout"},
		{Click: common.ClickTagBar, Mod: 0, Button: 1, Command: "view"},
		{Click: common.ClickTagBar, Mod: 0, Button: 3, Command: "toggleview"},
		{Click: common.ClickTagBar, Mod: modShift, Button: 1, Command: "tag"},
		{Click: common.ClickTagBar, Mod: modShift, Button: 3, Command: "toggletag"},
	}
}
