package venn

import (
	"time"

	"github.com/vennlab/venn/pkg/geometry"
	"github.com/vennlab/venn/pkg/observability"
	"github.com/vennlab/venn/pkg/optimize"
)

// disjointSentinel is the anchor assigned to a region that has no drawable
// interior: far outside any reasonable diagram frame so renderers can
// detect and skip it.
var disjointSentinel = geometry.Point{X: 0, Y: -1000}

// circleMargin is the point's worst-case clearance: the smallest distance
// from p to an interior circle's boundary (from the inside) or to an
// exterior circle's boundary (from the outside). Negative when p is
// outside an interior circle or inside an exterior one.
func circleMargin(p geometry.Point, interior, exterior []geometry.Circle) float64 {
	margin := interior[0].Radius - geometry.Distance(interior[0].Center(), p)
	for _, c := range interior[1:] {
		if m := c.Radius - geometry.Distance(c.Center(), p); m <= margin {
			margin = m
		}
	}
	for _, c := range exterior {
		if m := geometry.Distance(c.Center(), p) - c.Radius; m <= margin {
			margin = m
		}
	}
	return margin
}

// computeAnchor finds the point inside all interior circles and outside
// all exterior circles with the best margin to every boundary. It seeds
// with samples around each interior circle (center plus four half-radius
// offsets), refines the best sample with Nelder–Mead, and falls back
// through progressively weaker strategies when the refined point is
// invalid. The disjoint result reports a region with no drawable interior.
func computeAnchor(interior, exterior []geometry.Circle) (point geometry.Point, disjoint bool) {
	var points []geometry.Point
	for _, c := range interior {
		points = append(points,
			geometry.Point{X: c.X, Y: c.Y},
			geometry.Point{X: c.X + c.Radius/2, Y: c.Y},
			geometry.Point{X: c.X - c.Radius/2, Y: c.Y},
			geometry.Point{X: c.X, Y: c.Y + c.Radius/2},
			geometry.Point{X: c.X, Y: c.Y - c.Radius/2},
		)
	}

	initial := points[0]
	margin := circleMargin(points[0], interior, exterior)
	for _, p := range points[1:] {
		if m := circleMargin(p, interior, exterior); m >= margin {
			initial = p
			margin = m
		}
	}

	result := optimize.NelderMead(func(p []float64) float64 {
		return -circleMargin(geometry.Point{X: p[0], Y: p[1]}, interior, exterior)
	}, []float64{initial.X, initial.Y}, optimize.NelderMeadParams{
		MaxIterations: 500,
		MinErrorDelta: 1e-10,
	})
	ret := geometry.Point{X: result.X[0], Y: result.X[1]}

	valid := true
	for _, c := range interior {
		if geometry.Distance(ret, c.Center()) > c.Radius {
			valid = false
			break
		}
	}
	if valid {
		for _, c := range exterior {
			if geometry.Distance(ret, c.Center()) < c.Radius {
				valid = false
				break
			}
		}
	}
	if valid {
		return ret, false
	}

	// Heavily overlapped diagrams routinely defeat the margin search; fall
	// back in order of decreasing fidelity.
	if len(interior) == 1 {
		return interior[0].Center(), false
	}

	var stats geometry.Stats
	geometry.IntersectionArea(interior, &stats)

	switch {
	case len(stats.Arcs) == 0:
		// No boundary at all: the region is not representable on screen.
		return disjointSentinel, true
	case len(stats.Arcs) == 1:
		return stats.Arcs[0].Circle.Center(), false
	case len(exterior) > 0:
		// The exterior constraints may be what is unsatisfiable; retry
		// with the interior alone.
		return computeAnchor(interior, nil)
	default:
		// Last resort: average the boundary vertices.
		vertices := make([]geometry.Point, len(stats.Arcs))
		for i, arc := range stats.Arcs {
			vertices[i] = arc.P1
		}
		return geometry.Center(vertices), false
	}
}

// overlappedBy maps each set identifier to the identifiers of circles that
// fully engulf its circle. Engulfed-by relationships use the Small
// tolerance so near-exact containment counts.
func overlappedBy(circles Solution) map[string][]string {
	ids := sortedIDs(circles)
	ret := make(map[string][]string, len(ids))
	for _, id := range ids {
		ret[id] = nil
	}
	for i := 0; i < len(ids); i++ {
		a := circles[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := circles[ids[j]]
			d := geometry.Distance(a.Center(), b.Center())
			if d+b.Radius <= a.Radius+geometry.Small {
				ret[ids[j]] = append(ret[ids[j]], ids[i])
			} else if d+a.Radius <= b.Radius+geometry.Small {
				ret[ids[i]] = append(ret[ids[i]], ids[j])
			}
		}
	}
	return ret
}

// ComputeLabelAnchors finds, for each region, the interior point with the
// most clearance from the region's boundaries, suitable as a label anchor.
// The returned map is keyed by Region.Key (the region's identifiers in
// their original order).
//
// Circles that fully engulf one of a region's circles are excluded from
// that region's exterior, since they cannot exclude any of its area and
// would only over-constrain the margin. A region with no drawable interior
// gets an out-of-bounds sentinel anchor; when its desired size is non-zero
// this is also surfaced as a warning on the options logger. A nil opts
// selects all defaults.
func ComputeLabelAnchors(circles Solution, regions []Region, opts *Options) map[string]geometry.Point {
	if opts == nil {
		opts = &Options{}
	}
	// Always nil per the ValidateAndSetDefaults contract.
	_ = opts.ValidateAndSetDefaults()

	overlapped := overlappedBy(circles)
	ret := make(map[string]geometry.Point, len(regions))

	for _, region := range regions {
		start := time.Now()
		key := region.Key()
		observability.Label().OnAnchorStart(key)

		inRegion := make(map[string]bool, len(region.Sets))
		exclude := make(map[string]bool)
		for _, id := range region.Sets {
			inRegion[id] = true
			for _, engulfing := range overlapped[id] {
				exclude[engulfing] = true
			}
		}

		var interior, exterior []geometry.Circle
		for _, id := range sortedIDs(circles) {
			switch {
			case inRegion[id]:
				interior = append(interior, circles[id])
			case !exclude[id]:
				exterior = append(exterior, circles[id])
			}
		}
		if len(interior) == 0 {
			ret[key] = disjointSentinel
			observability.Label().OnAnchorComplete(key, true, time.Since(start))
			continue
		}

		anchor, disjoint := computeAnchor(interior, exterior)
		ret[key] = anchor
		if disjoint && region.Size > 0 {
			opts.Logger.Warn("region not representable on screen", "region", key, "size", region.Size)
		}
		observability.Label().OnAnchorComplete(key, disjoint, time.Since(start))
	}

	return ret
}
