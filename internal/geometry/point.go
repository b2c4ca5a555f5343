// Package geometry implements the 2D curve model used for construction
// profiles: points, line and arc segments, validated open/closed curves,
// curve arrays, and factories for common shapes including corrugated
// decking profiles.
package geometry

import "math"

// Point is a 2D coordinate in meters. It is a plain value with no identity.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
