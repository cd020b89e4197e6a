package desktop

import (
	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/store"
	"github.com/goxwm/goxwm/ui"
)

// DrawBar repaints m's bar through the configured ui.Drawer.
func DrawBar(m *store.Monitor) {
	ui.Render(m)
}

// DrawBars repaints every monitor's bar, matching dwm.c's drawbars().
func DrawBars() {
	for _, m := range store.Mons {
		DrawBar(m)
	}
}

func classifyBarClick(m *store.Monitor, x int) common.Click {
	return ui.ClassifyX(m, x)
}

func tagBitAtX(m *store.Monitor, x int) uint32 {
	return ui.TagBitAtX(m, x)
}
