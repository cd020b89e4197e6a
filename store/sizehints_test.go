package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tiledMonitor() *Monitor {
	return &Monitor{
		WX: 0, WY: 0, WW: 1920, WH: 1080,
		Layouts: [2]*Layout{{Symbol: "[]=", Arrange: func(*Monitor) {}}, {}},
	}
}

func TestApplySizeHintsClampsToWorkArea(t *testing.T) {
	m := tiledMonitor()
	c := &Client{Mon: m, X: 0, Y: 0, W: 200, H: 100, BorderWidth: 1}

	nx, ny, _, _, changed := ApplySizeHints(c, 2000, 1100, 200, 100, false, 1920, 1080)

	assert.True(t, changed)
	assert.Equal(t, m.WX+m.WW-c.OuterWidth(), nx)
	assert.Equal(t, m.WY+m.WH-c.OuterHeight(), ny)
}

func TestApplySizeHintsNoChangeIsStable(t *testing.T) {
	m := tiledMonitor()
	c := &Client{Mon: m, X: 10, Y: 10, W: 300, H: 200, BorderWidth: 1}

	_, _, _, _, changed := ApplySizeHints(c, 10, 10, 300, 200, false, 1920, 1080)

	assert.False(t, changed)
}

func TestApplySizeHintsEnforcesMinimumSize(t *testing.T) {
	m := tiledMonitor()
	c := &Client{Mon: m, X: 0, Y: 0, W: 50, H: 50, BorderWidth: 0}

	_, _, nw, nh, _ := ApplySizeHints(c, 0, 0, -5, -5, false, 1920, 1080)

	assert.Equal(t, 1, nw)
	assert.Equal(t, 1, nh)
}

func TestClampToHintsRespectsMinAndMax(t *testing.T) {
	c := &Client{
		Hints: SizeHints{
			Valid:    true,
			MinWidth: 100, MinHeight: 100,
			MaxWidth: 400, MaxHeight: 400,
		},
	}

	w, h := clampToHints(c, 50, 500)

	assert.Equal(t, 100, w)
	assert.Equal(t, 400, h)
}

func TestClampToHintsAppliesIncrements(t *testing.T) {
	c := &Client{
		Hints: SizeHints{
			Valid:     true,
			BaseWidth: 0, BaseHeight: 0,
			IncWidth: 10, IncHeight: 10,
		},
	}

	w, h := clampToHints(c, 97, 103)

	assert.Equal(t, 90, w)
	assert.Equal(t, 100, h)
}
