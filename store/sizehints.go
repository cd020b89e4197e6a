package store

import "github.com/goxwm/goxwm/common"

func resizeHintsEnabled() bool {
	return common.Config.Snapshot().ResizeHints
}

// ApplySizeHints clamps a proposed geometry to c's screen/monitor
// bounds and, when hints apply, to its ICCCM WM_NORMAL_HINTS. It
// reports whether the clamped geometry differs from c's current one,
// matching dwm.c's applysizehints() return value. interact selects the
// screen-wide bound (keyboard/mouse drags, which may cross monitors)
// versus the monitor work-area bound (everything else).
func ApplySizeHints(c *Client, x, y, w, h int, interact bool, screenW, screenH int) (nx, ny, nw, nh int, changed bool) {
	nx, ny, nw, nh = x, y, w, h
	m := c.Mon

	nw = max(1, nw)
	nh = max(1, nh)

	if interact {
		if nx > screenW {
			nx = screenW - c.OuterWidth()
		}
		if ny > screenH {
			ny = screenH - c.OuterHeight()
		}
		if nx+nw+2*c.BorderWidth < 0 {
			nx = 0
		}
		if ny+nh+2*c.BorderWidth < 0 {
			ny = 0
		}
	} else {
		if nx >= m.WX+m.WW {
			nx = m.WX + m.WW - c.OuterWidth()
		}
		if ny >= m.WY+m.WH {
			ny = m.WY + m.WH - c.OuterHeight()
		}
		if nx+nw+2*c.BorderWidth <= m.WX {
			nx = m.WX
		}
		if ny+nh+2*c.BorderWidth <= m.WY {
			ny = m.WY
		}
	}

	if nh < m.BarHeight {
		nh = m.BarHeight
	}
	if nw < m.BarHeight {
		nw = m.BarHeight
	}

	if applyHints(c) {
		nw, nh = clampToHints(c, nw, nh)
	}

	return nx, ny, nw, nh, nx != c.X || ny != c.Y || nw != c.W || nh != c.H
}

// applyHints mirrors dwm.c's gate: hints only constrain a tiled
// client when the user asked for it globally; floating clients and
// clients under no arranger (floating layout) always honor them.
func applyHints(c *Client) bool {
	return resizeHintsEnabled() || c.Floating || c.Mon.CurLayout().Arrange == nil
}

// clampToHints applies the ICCCM 4.1.2.3 base/aspect/increment
// algorithm, grounded on dwm.c's applysizehints().
func clampToHints(c *Client, w, h int) (int, int) {
	hints := c.Hints
	baseIsMin := hints.BaseWidth == hints.MinWidth && hints.BaseHeight == hints.MinHeight

	if !baseIsMin {
		w -= hints.BaseWidth
		h -= hints.BaseHeight
	}

	if hints.MinAspect > 0 && hints.MaxAspect > 0 {
		if hints.MaxAspect < float64(w)/float64(h) {
			w = int(float64(h)*hints.MaxAspect + 0.5)
		} else if hints.MinAspect < float64(h)/float64(w) {
			h = int(float64(w)*hints.MinAspect + 0.5)
		}
	}

	if baseIsMin {
		w -= hints.BaseWidth
		h -= hints.BaseHeight
	}

	if hints.IncWidth != 0 {
		w -= w % hints.IncWidth
	}
	if hints.IncHeight != 0 {
		h -= h % hints.IncHeight
	}

	w = max(w+hints.BaseWidth, hints.MinWidth)
	h = max(h+hints.BaseHeight, hints.MinHeight)
	if hints.MaxWidth != 0 {
		w = min(w, hints.MaxWidth)
	}
	if hints.MaxHeight != 0 {
		h = min(h, hints.MaxHeight)
	}
	return w, h
}

