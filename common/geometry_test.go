package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometryCenter(t *testing.T) {
	g := CreateGeometry(0, 0, 100, 50)
	assert.Equal(t, Point{X: 50, Y: 25}, g.Center())
}

func TestGeometryInside(t *testing.T) {
	g := Geometry{X: 10, Y: 10, Width: 20, Height: 20}
	assert.True(t, g.Inside(Point{X: 10, Y: 10}))
	assert.True(t, g.Inside(Point{X: 29, Y: 29}))
	assert.False(t, g.Inside(Point{X: 30, Y: 10}))
	assert.False(t, g.Inside(Point{X: 9, Y: 10}))
}

func TestGeometryIntersectArea(t *testing.T) {
	g := Geometry{X: 0, Y: 0, Width: 100, Height: 100}
	assert.Equal(t, 2500, g.IntersectArea(50, 50, 100, 100))
	assert.Equal(t, 0, g.IntersectArea(200, 200, 50, 50))
}

func TestMinMaxAbsInt(t *testing.T) {
	assert.Equal(t, 3, MinInt(3, 7))
	assert.Equal(t, 7, MaxInt(3, 7))
	assert.Equal(t, 5, AbsInt(-5))
	assert.Equal(t, 5, AbsInt(5))
}

func TestIsInList(t *testing.T) {
	haystack := []string{"_NET_WM_STATE_FULLSCREEN", "_NET_WM_WINDOW_TYPE_DIALOG"}
	assert.True(t, IsInList("_NET_WM_STATE_FULLSCREEN", haystack))
	assert.False(t, IsInList("_NET_WM_STATE_STICKY", haystack))
	assert.False(t, IsInList("anything", []string{}))
}
