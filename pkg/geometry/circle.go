package geometry

import "math"

// CircleCircleIntersection returns the points at which the boundaries of two
// circles cross. There are either two such points or none: circles that are
// farther apart than the sum of their radii, or where one is contained inside
// the other (distance ≤ |r1 − r2|), do not cross. Exact tangency and
// coincident circles also return no points.
//
// The construction is the standard law-of-cosines one: the chord midpoint is
// offset from the first center along the center line, and the two crossings
// sit half a chord length away perpendicular to it.
func CircleCircleIntersection(a, b Circle) []Point {
	d := Distance(a.Center(), b.Center())
	r1, r2 := a.Radius, b.Radius

	// Too far apart, or one contained in the other.
	if d >= r1+r2 || d <= math.Abs(r1-r2) {
		return nil
	}

	a1 := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(r1*r1 - a1*a1)
	x0 := a.X + a1*(b.X-a.X)/d
	y0 := a.Y + a1*(b.Y-a.Y)/d
	rx := -(b.Y - a.Y) * (h / d)
	ry := -(a.X - b.X) * (h / d)

	return []Point{
		{X: x0 + rx, Y: y0 - ry},
		{X: x0 - rx, Y: y0 + ry},
	}
}

// SegmentArea returns the area of a circular segment of a circle with radius
// r, where the segment has chord-to-arc depth (sagitta) width.
func SegmentArea(r, width float64) float64 {
	return r*r*math.Acos(1-width/r) - (r-width)*math.Sqrt(width*(2*r-width))
}

// CircleOverlap returns the overlap (lens) area of two circles with radii r1
// and r2 whose centers are distance d apart. Disjoint circles overlap not at
// all; a fully nested circle overlaps with its whole area; anything between
// is the sum of the two circular segments cut off by the chord through the
// intersection points.
func CircleOverlap(r1, r2, d float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		rMin := math.Min(r1, r2)
		return math.Pi * rMin * rMin
	}

	w1 := r1 - (d*d-r2*r2+r1*r1)/(2*d)
	w2 := r2 - (d*d-r1*r1+r2*r2)/(2*d)
	return SegmentArea(r1, w1) + SegmentArea(r2, w2)
}

// ContainedInCircles reports whether a point lies inside every one of the
// given circles, within the Small tolerance.
func ContainedInCircles(p Point, circles []Circle) bool {
	for _, c := range circles {
		if Distance(p, c.Center()) > c.Radius+Small {
			return false
		}
	}
	return true
}
