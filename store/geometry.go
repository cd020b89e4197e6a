package store

import "github.com/jezek/xgb/xproto"

// Resize clamps (x,y,w,h) through ApplySizeHints and, if the clamped
// geometry actually differs from c's current one, applies it.
// Mirrors dwm.c's resize().
func Resize(c *Client, x, y, w, h int, interact bool) {
	screen, err := RootGeometry()
	if err != nil {
		return
	}
	nx, ny, nw, nh, changed := ApplySizeHints(c, x, y, w, h, interact, screen.Width, screen.Height)
	if changed {
		ResizeClient(c, nx, ny, nw, nh)
	}
}

// MoveWindow repositions c's window without touching its recorded
// geometry, used by the show/hide visibility pass so a hidden client
// keeps the position it is shown at again.
func MoveWindow(c *Client, x, y int) {
	xproto.ConfigureWindow(X.Conn(), c.Win, xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))})
}
