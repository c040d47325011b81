// Package physics provides the collision tests used by the playfield.
package physics

import "math"

// Near reports whether two points are within threshold on both axes.
// This is an axis-aligned box test, not a distance check.
func Near(ax, ay, bx, by, threshold float64) bool {
	return math.Abs(ax-bx) < threshold && math.Abs(ay-by) < threshold
}

// Box is an axis-aligned footprint with its top-left corner at X, Y.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// InsetOverlap checks if a unit cell at (px, py) touches box b.
// Both edges are shrunk by inset so that grazing contact does not count.
func InsetOverlap(px, py float64, b Box, inset float64) bool {
	reach := 1 - inset
	return px+reach >= b.X && px <= b.X+b.Width-inset &&
		py+reach >= b.Y && py <= b.Y+b.Height-inset
}
