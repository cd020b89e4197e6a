package layout

import (
	"fmt"

	"github.com/goxwm/goxwm/store"
)

// Monocle stacks every tiled client full-size over the work area,
// leaving only the topmost visible. The bar symbol is overridden with
// a visible-client count, matching dwm.c's monocle().
func Monocle(m *store.Monitor) {
	n := 0
	for _, c := range m.Clients {
		if store.IsVisible(c) {
			n++
		}
	}
	if n > 0 {
		m.LtSymbol = fmt.Sprintf("[%d]", n)
	}

	for _, c := range tiledClients(m) {
		store.Resize(c, m.WX, m.WY, m.WW-2*c.BorderWidth, m.WH-2*c.BorderWidth, false)
	}
}
