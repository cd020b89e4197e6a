package store

import (
	"github.com/goxwm/goxwm/common"

	log "github.com/sirupsen/logrus"
)

func monitorGeometry(m *Monitor) common.Geometry {
	return common.Geometry{X: m.MX, Y: m.MY, Width: m.MW, Height: m.MH}
}

// CreateMonitor builds a fresh Monitor seeded from Config's compile-time
// defaults (mfact, nmaster, layout rotation, bar placement), matching
// dwm.c's createmon().
func CreateMonitor() *Monitor {
	cfg := common.Config.Snapshot()

	m := &Monitor{
		TagSet:  [2]uint32{1, 1},
		MFact:   cfg.MFact,
		NMaster: cfg.NMaster,
		ShowBar: cfg.ShowBar,
		TopBar:  cfg.TopBar,
	}

	m.Layouts[0] = layoutByIndex(0)
	m.Layouts[1] = layoutByIndex(1 % max(1, len(cfg.Layouts)))
	if m.Layouts[0] != nil {
		m.LtSymbol = m.Layouts[0].Symbol
	}
	return m
}

// registeredLayouts is populated by the layout package's startup
// registration (layout.Register) so store never imports layout
// directly and no import cycle is created between the data model and
// the arrangers that operate on it.
var registeredLayouts []*Layout

// RegisterLayout appends a named arranger to the rotation order,
// called once per configured layout during startup.
func RegisterLayout(symbol string, arrange func(*Monitor)) {
	registeredLayouts = append(registeredLayouts, &Layout{Symbol: symbol, Arrange: arrange})
}

func layoutByIndex(i int) *Layout {
	if i < 0 || i >= len(registeredLayouts) {
		if len(registeredLayouts) > 0 {
			return registeredLayouts[0]
		}
		return nil
	}
	return registeredLayouts[i]
}

// UpdateGeometry reconciles Mons against the current RandR head list,
// attaching new monitors, migrating clients off removed ones onto
// Mons[0] (dwm.c's updategeom / cleanupmon), and refreshing the
// screen/work-area rectangles of survivors. It reports whether
// anything changed (screen layout changed, new hotplug).
func UpdateGeometry() (bool, error) {
	heads, err := PhysicalHeads()
	if err != nil {
		return false, err
	}

	dirty := false

	if len(Mons) == 0 {
		for range heads {
			m := CreateMonitor()
			m.Num = len(Mons)
			Mons = append(Mons, m)
			dirty = true
		}
	} else if len(heads) < len(Mons) {
		for len(Mons) > len(heads) {
			removed := Mons[len(Mons)-1]
			Mons = Mons[:len(Mons)-1]
			migrateClients(removed, Mons[0])
			if SelMon == removed {
				SelMon = Mons[0]
			}
			dirty = true
		}
	} else if len(heads) > len(Mons) {
		for len(Mons) < len(heads) {
			m := CreateMonitor()
			m.Num = len(Mons)
			Mons = append(Mons, m)
			dirty = true
		}
	}

	for i, h := range heads {
		if i >= len(Mons) {
			break
		}
		if UpdateMonitorGeometry(Mons[i], h.Geometry) {
			dirty = true
		}
	}

	if SelMon == nil && len(Mons) > 0 {
		SelMon = Mons[0]
	}

	if dirty {
		log.WithField("count", len(Mons)).Info("Monitor layout changed")
	}
	return dirty, nil
}

// UpdateMonitorGeometry applies a new screen rectangle to m, recomputing
// its work area against the bar strip (§4.C's UpdateGeometry /
// UpdateBarPosition). Reports whether the rectangle actually changed.
func UpdateMonitorGeometry(m *Monitor, g common.Geometry) bool {
	changed := m.MX != g.X || m.MY != g.Y || m.MW != g.Width || m.MH != g.Height
	m.MX, m.MY, m.MW, m.MH = g.X, g.Y, g.Width, g.Height
	UpdateBarPosition(m)
	return changed
}

// UpdateBarPosition recomputes the work area from the bar height and
// placement, matching dwm.c's updatebarpos.
func UpdateBarPosition(m *Monitor) {
	m.WX, m.WY, m.WW, m.WH = m.MX, m.MY, m.MW, m.MH
	if !m.ShowBar {
		return
	}
	m.WH -= m.BarHeight
	if m.TopBar {
		m.WY += m.BarHeight
	}
}

func migrateClients(from, to *Monitor) {
	for _, c := range from.Clients {
		c.Mon = to
		Attach(c)
	}
	for _, c := range from.Stack {
		AttachStack(c)
	}
	from.Clients = nil
	from.Stack = nil
}
