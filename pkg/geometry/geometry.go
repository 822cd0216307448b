// Package geometry provides the exact circle-intersection geometry that
// powers area-proportional Venn and Euler diagram layouts.
//
// # Overview
//
// The central primitive is [IntersectionArea], which computes the area common
// to an arbitrary set of circles by decomposing the shared region into an
// inner polygon plus circular segments along its boundary. Supporting
// functions cover pairwise circle intersection points, the closed-form
// two-circle overlap area, and circular-segment area.
//
// All degenerate configurations (disjoint circles, fully nested circles,
// tangency) are handled as explicit branches returning empty or zero
// results rather than NaN. Containment tests absorb floating-point error
// with the [Small] absolute tolerance: two circles whose boundary
// separation is within Small are treated as touching or contained instead
// of as a numerically unstable near-miss.
//
// # Coordinate Convention
//
// Coordinates are plain 2-D user units. Nothing in this package assumes a
// particular axis direction, so callers may use either screen (y-down) or
// mathematical (y-up) conventions.
package geometry

import "math"

// Small is the absolute epsilon used by containment and equality tests to
// absorb floating-point error.
const Small = 1e-10

// Point is a 2-D point value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Circle is a circle with center (X, Y) and a non-negative radius.
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Center returns the circle's center point.
func (c Circle) Center() Point { return Point{X: c.X, Y: c.Y} }

// Area returns the circle's full area.
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// Center returns the arithmetic mean of a set of points.
// It returns the origin for an empty input.
func Center(points []Point) Point {
	var c Point
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(points))
	c.Y /= float64(len(points))
	return c
}
