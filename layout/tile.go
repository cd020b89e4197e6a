package layout

import "github.com/goxwm/goxwm/store"

// Tile arranges visible, non-floating clients into a master column
// (width m.MFact of the work area, holding up to m.NMaster clients)
// and a stack column splitting the remainder, each column's clients
// sharing their column's height evenly. Grounded exactly on dwm.c's
// tile(), adapted from its linked-list walk to the Clients slice.
func Tile(m *store.Monitor) {
	tiled := tiledClients(m)
	n := len(tiled)
	if n == 0 {
		return
	}

	masterWidth := m.WW
	if n > m.NMaster {
		if m.NMaster > 0 {
			masterWidth = int(float64(m.WW) * m.MFact)
		} else {
			masterWidth = 0
		}
	}

	my, ty := 0, 0
	for i, c := range tiled {
		if i < m.NMaster {
			h := (m.WH - my) / (min(n, m.NMaster) - i)
			store.Resize(c, m.WX, m.WY+my, masterWidth-2*c.BorderWidth, h-2*c.BorderWidth, false)
			if my+c.OuterHeight() < m.WH {
				my += c.OuterHeight()
			}
		} else {
			h := (m.WH - ty) / (n - i)
			store.Resize(c, m.WX+masterWidth, m.WY+ty, m.WW-masterWidth-2*c.BorderWidth, h-2*c.BorderWidth, false)
			if ty+c.OuterHeight() < m.WH {
				ty += c.OuterHeight()
			}
		}
	}
}

// tiledClients returns m's Clients in tile order, skipping floating
// and invisible ones (dwm.c's nexttiled walk collected into a slice).
func tiledClients(m *store.Monitor) []*store.Client {
	out := make([]*store.Client, 0, len(m.Clients))
	for _, c := range m.Clients {
		if !c.Floating && store.IsVisible(c) {
			out = append(out, c)
		}
	}
	return out
}
