// Package geom provides the small set of planar helpers used by the
// lockpattern packages: Euclidean distance and strict circular hit-testing.
//
// All functions are pure, allocation-free and safe for concurrent use.
package geom

import "math"

// Point is a location on the drawing surface, in surface units (pixels).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p.X, p.Y, q.X, q.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2).
// Only squared differences are used, so argument order never matters.
// Complexity: O(1).
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2

	return math.Sqrt(dx*dx + dy*dy)
}

// WithinCircle reports whether (px,py) lies strictly inside the circle of the
// given radius centred at (cx,cy). A point exactly on the boundary is outside,
// and a radius ≤ 0 never contains anything.
// Complexity: O(1).
func WithinCircle(px, py, radius, cx, cy float64) bool {
	if radius <= 0 {
		return false
	}

	return Distance(px, py, cx, cy) < radius
}
