package store

// Mons is the ring of managed monitors, in left-to-right order
// (§4.C). SelMon is the monitor new input/focus requests target absent
// an explicit target.
var (
	Mons   []*Monitor
	SelMon *Monitor
)

// Attach prepends c to its monitor's tile-order list (dwm.c's attach:
// new clients always become the new master-slot candidate).
func Attach(c *Client) {
	c.Mon.Clients = append([]*Client{c}, c.Mon.Clients...)
}

// Detach removes c from its monitor's tile-order list.
func Detach(c *Client) {
	c.Mon.Clients = removeClient(c.Mon.Clients, c)
}

// AttachStack prepends c to its monitor's focus-history list, making
// it the most-recently-used client.
func AttachStack(c *Client) {
	c.Mon.Stack = append([]*Client{c}, c.Mon.Stack...)
}

// DetachStack removes c from its monitor's focus-history list. When c
// was the selected client, selection falls to the next visible client
// still on the stack (dwm.c's detachstack, which additionally clears
// m->sel and re-derives it by walking the stack for a still-visible
// entry).
func DetachStack(c *Client) {
	m := c.Mon
	m.Stack = removeClient(m.Stack, c)

	if m.Sel == c {
		for _, t := range m.Stack {
			if IsVisible(t) {
				m.Sel = t
				return
			}
		}
		m.Sel = nil
	}
}

func removeClient(list []*Client, c *Client) []*Client {
	out := make([]*Client, 0, len(list))
	for _, v := range list {
		if v != c {
			out = append(out, v)
		}
	}
	return out
}

// WinToClient finds the managed client owning w, across all monitors.
func WinToClient(w uint32) *Client {
	for _, m := range Mons {
		for _, c := range m.Clients {
			if uint32(c.Win) == w {
				return c
			}
		}
	}
	return nil
}

// WinToMon resolves the monitor under window w: the bar window if w
// names one, the client's monitor if w names a managed client, or the
// monitor containing the pointer if w is the root window. Falls back
// to SelMon (dwm.c's wintomon).
func WinToMon(w uint32) *Monitor {
	if w == uint32(RootWin()) {
		p, err := PointerPosition()
		if err == nil {
			if m := RectToMon(p.X, p.Y, 1, 1); m != nil {
				return m
			}
		}
		return SelMon
	}
	for _, m := range Mons {
		if uint32(m.BarWin) == w {
			return m
		}
	}
	if c := WinToClient(w); c != nil {
		return c.Mon
	}
	return SelMon
}

// RectToMon picks the monitor with the greatest intersection area with
// the given rectangle, matching dwm.c's recttomon. Ties favor SelMon,
// then the first monitor in Mons order.
func RectToMon(x, y, w, h int) *Monitor {
	var best *Monitor
	bestArea := 0
	for _, m := range Mons {
		g := monitorGeometry(m)
		area := g.IntersectArea(x, y, w, h)
		if area > bestArea || (area == bestArea && m == SelMon) {
			bestArea = area
			best = m
		}
	}
	if best == nil && len(Mons) > 0 {
		return Mons[0]
	}
	return best
}
