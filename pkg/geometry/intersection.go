package geometry

import (
	"math"
	"sort"
)

// Arc is one circular boundary segment of an intersection region's
// perimeter. Width is the chord-to-arc sagitta, clamped to at most twice the
// circle's radius. P1 and P2 are the arc endpoints; consecutive arcs of a
// region share endpoints so that the boundary forms a closed loop.
type Arc struct {
	Circle Circle
	Width  float64
	P1, P2 Point
}

// IntersectionPoint is a pairwise circle intersection point tagged with the
// indices of its two parent circles in the queried slice.
type IntersectionPoint struct {
	Point
	Parents [2]int
}

// Stats captures the full decomposition computed by [IntersectionArea] so
// that callers (label placement, tests) can reuse it without recomputation.
// It is transient: recomputed on every area query, never persisted.
type Stats struct {
	Area        float64
	ArcArea     float64
	PolygonArea float64
	Arcs        []Arc
	InnerPoints []IntersectionPoint

	// IntersectionPoints holds every pairwise intersection point, including
	// those outside the common region.
	IntersectionPoints []IntersectionPoint
}

// intersectionPoints collects every pairwise intersection point of the
// circles, tagged with parent indices.
func intersectionPoints(circles []Circle) []IntersectionPoint {
	var ret []IntersectionPoint
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			for _, p := range CircleCircleIntersection(circles[i], circles[j]) {
				ret = append(ret, IntersectionPoint{Point: p, Parents: [2]int{i, j}})
			}
		}
	}
	return ret
}

// hasParent reports whether circle index idx is one of the point's parents.
func (p IntersectionPoint) hasParent(idx int) bool {
	return p.Parents[0] == idx || p.Parents[1] == idx
}

// byAngleDesc sorts boundary vertices by descending angle around their
// centroid, keeping the parallel angle slice in step.
type byAngleDesc struct {
	points []IntersectionPoint
	angles []float64
}

func (s *byAngleDesc) Len() int           { return len(s.points) }
func (s *byAngleDesc) Less(i, j int) bool { return s.angles[i] > s.angles[j] }
func (s *byAngleDesc) Swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}

// IntersectionArea returns the area of the region common to all of the given
// circles (the full conjunction, not a pairwise sum). If stats is non-nil it
// is populated with the arc/polygon decomposition of that region.
//
// The region's boundary vertices are the pairwise intersection points that
// lie inside every circle. With two or more such vertices the region is an
// inner polygon (by the shoelace formula) plus one circular segment per
// polygon edge; for each edge, among the circles passing through both
// endpoints, the one with the smallest arc sagitta bounds the region there.
// With fewer than two vertices the circles are either disjoint (area zero)
// or the smallest circle is nested inside all others (its own area).
func IntersectionArea(circles []Circle, stats *Stats) float64 {
	points := intersectionPoints(circles)

	var inner []IntersectionPoint
	for _, p := range points {
		if ContainedInCircles(p.Point, circles) {
			inner = append(inner, p)
		}
	}

	var arcArea, polygonArea float64
	var arcs []Arc

	if len(inner) > 1 {
		// Sort the vertices by angle from their centroid, which lets us walk
		// consecutive pairs to get the polygon edges.
		centerPts := make([]Point, len(inner))
		for i, p := range inner {
			centerPts[i] = p.Point
		}
		center := Center(centerPts)
		angles := make([]float64, len(inner))
		for i, p := range inner {
			angles[i] = math.Atan2(p.X-center.X, p.Y-center.Y)
		}
		sort.Sort(&byAngleDesc{points: inner, angles: angles})

		p2 := inner[len(inner)-1]
		for i := 0; i < len(inner); i++ {
			p1 := inner[i]

			polygonArea += (p2.X + p1.X) * (p1.Y - p2.Y)

			// The edge's arc belongs to whichever shared parent circle has
			// the tightest (smallest sagitta) arc between the endpoints.
			midPoint := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
			var arc *Arc
			for _, parent := range p1.Parents {
				if !p2.hasParent(parent) {
					continue
				}
				circle := circles[parent]
				a1 := math.Atan2(p1.X-circle.X, p1.Y-circle.Y)
				a2 := math.Atan2(p2.X-circle.X, p2.Y-circle.Y)

				angleDiff := a2 - a1
				if angleDiff < 0 {
					angleDiff += 2 * math.Pi
				}

				// Sagitta is the distance from the chord midpoint to the rim
				// at the angle halfway between the two endpoints.
				a := a2 - angleDiff/2
				width := Distance(midPoint, Point{
					X: circle.X + circle.Radius*math.Sin(a),
					Y: circle.Y + circle.Radius*math.Cos(a),
				})
				if width > circle.Radius*2 {
					width = circle.Radius * 2
				}

				if arc == nil || arc.Width > width {
					arc = &Arc{Circle: circle, Width: width, P1: p1.Point, P2: p2.Point}
				}
			}

			if arc != nil {
				arcs = append(arcs, *arc)
				arcArea += SegmentArea(arc.Circle.Radius, arc.Width)
				p2 = p1
			}
		}
	} else if len(circles) > 0 {
		// No boundary vertices: the circles are either fully disjoint or the
		// smallest one is nested inside all the others.
		smallest := circles[0]
		for _, c := range circles[1:] {
			if c.Radius < smallest.Radius {
				smallest = c
			}
		}

		disjoint := false
		for _, c := range circles {
			if Distance(c.Center(), smallest.Center()) > math.Abs(smallest.Radius-c.Radius) {
				disjoint = true
				break
			}
		}

		if !disjoint {
			arcArea = smallest.Radius * smallest.Radius * math.Pi
			arcs = append(arcs, Arc{
				Circle: smallest,
				Width:  smallest.Radius * 2,
				P1:     Point{X: smallest.X, Y: smallest.Y + smallest.Radius},
				P2:     Point{X: smallest.X - Small, Y: smallest.Y + smallest.Radius},
			})
		}
	}

	polygonArea /= 2

	if stats != nil {
		stats.Area = arcArea + polygonArea
		stats.ArcArea = arcArea
		stats.PolygonArea = polygonArea
		stats.Arcs = arcs
		stats.InnerPoints = inner
		stats.IntersectionPoints = points
	}

	return arcArea + polygonArea
}
