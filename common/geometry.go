package common

import "golang.org/x/exp/slices"

// Geometry describes a rectangle in root-window coordinates.
type Geometry struct {
	X      int // Left edge
	Y      int // Top edge
	Width  int // Rectangle width
	Height int // Rectangle height
}

// Point describes a single root-window coordinate.
type Point struct {
	X int
	Y int
}

func CreateGeometry(x, y, w, h int) *Geometry {
	return &Geometry{X: x, Y: y, Width: w, Height: h}
}

func (g Geometry) Pieces() (x, y, w, h int) {
	return g.X, g.Y, g.Width, g.Height
}

func (g Geometry) Center() Point {
	return Point{X: g.X + g.Width/2, Y: g.Y + g.Height/2}
}

// Inside reports whether p lies within g.
func (g Geometry) Inside(p Point) bool {
	return p.X >= g.X && p.X < g.X+g.Width && p.Y >= g.Y && p.Y < g.Y+g.Height
}

// Intersection area between g and a rectangle at (x,y,w,h), used by recttomon.
func (g Geometry) IntersectArea(x, y, w, h int) int {
	iw := MinInt(x+w, g.X+g.Width) - MaxInt(x, g.X)
	ih := MinInt(y+h, g.Y+g.Height) - MaxInt(y, g.Y)
	return MaxInt(0, iw) * MaxInt(0, ih)
}

func IsInsideRect(p Point, g Geometry) bool {
	return g.Inside(p)
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func AbsInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// IsInList reports whether needle equals any element of haystack,
// grounded on cogentcore-core/args.go's use of x/exp/slices in place
// of a hand-rolled linear scan.
func IsInList[T comparable](needle T, haystack []T) bool {
	return slices.Contains(haystack, needle)
}
