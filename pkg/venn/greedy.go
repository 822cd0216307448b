package venn

import (
	"math"
	"sort"

	"github.com/vennlab/venn/pkg/errors"
	"github.com/vennlab/venn/pkg/geometry"
	"github.com/vennlab/venn/pkg/optimize"
)

// unplaced is the holding position for circles the greedy pass has not
// positioned yet. It is far enough away that pending circles cannot affect
// the loss comparison between candidate points.
const unplaced = 1e10

// DistanceFromIntersectArea inverts the two-circle overlap formula: it
// returns the center distance d at which circles with radii r1 and r2
// overlap by exactly the given area. The overlap area is monotonically
// non-increasing in d, so the inversion is a bisection over [0, r1+r2].
// If the requested overlap is at least the smaller circle's whole area,
// the circles must be nested and |r1−r2| is returned directly.
func DistanceFromIntersectArea(r1, r2, overlap float64) (float64, error) {
	rMin := math.Min(r1, r2)
	if rMin*rMin*math.Pi <= overlap+geometry.Small {
		return math.Abs(r1 - r2), nil
	}

	return optimize.Bisect(func(d float64) float64 {
		return geometry.CircleOverlap(r1, r2, d) - overlap
	}, 0, r1+r2, optimize.BisectParams{MaxIterations: 100, Tolerance: 1e-10})
}

// setOverlap records one pairwise overlap as seen from a single set.
type setOverlap struct {
	set    string
	size   float64
	weight float64
}

// GreedyLayout places circles one at a time, most-overlapped sets first.
// Each new circle gets candidate positions at the pairwise target distance
// from every already-placed circle (four axis-aligned offsets per placed
// circle, plus the crossings of the distance circles around each placed
// pair), and takes whichever candidate minimizes the pairwise loss.
//
// This is exact for most 2- and 3-set inputs and a good starting point
// elsewhere; it can get stuck in local minima for larger inputs, which is
// why BestInitialLayout also tries ConstrainedMDSLayout there.
func GreedyLayout(regions []Region, opts *Options) (Solution, error) {
	loss := SquaredLoss
	if opts != nil && opts.LossFunction != nil {
		loss = opts.LossFunction
	}

	circles := Solution{}
	sizes := map[string]float64{}
	overlaps := map[string][]setOverlap{}
	for _, r := range regions {
		if len(r.Sets) == 1 {
			id := r.Sets[0]
			circles[id] = geometry.Circle{X: unplaced, Y: unplaced, Radius: math.Sqrt(r.Size / math.Pi)}
			sizes[id] = r.Size
			overlaps[id] = nil
		}
	}

	var pairs []Region
	for _, r := range regions {
		if len(r.Sets) != 2 {
			continue
		}
		pairs = append(pairs, r)

		weight := r.weight()
		left, right := r.Sets[0], r.Sets[1]
		// A pair that fully swallows the smaller circle carries no
		// positioning information, so don't let it drive the ordering.
		if r.Size+geometry.Small >= math.Min(sizes[left], sizes[right]) {
			weight = 0
		}
		overlaps[left] = append(overlaps[left], setOverlap{set: right, size: r.Size, weight: weight})
		overlaps[right] = append(overlaps[right], setOverlap{set: left, size: r.Size, weight: weight})
	}

	// Order sets by their total weighted overlap, most overlapped first.
	type setWeight struct {
		set  string
		size float64
	}
	mostOverlapped := make([]setWeight, 0, len(overlaps))
	for set, sos := range overlaps {
		var size float64
		for _, so := range sos {
			size += so.size * so.weight
		}
		mostOverlapped = append(mostOverlapped, setWeight{set: set, size: size})
	}
	sort.Slice(mostOverlapped, func(i, j int) bool {
		if mostOverlapped[i].size != mostOverlapped[j].size {
			return mostOverlapped[i].size > mostOverlapped[j].size
		}
		return mostOverlapped[i].set < mostOverlapped[j].set
	})

	if len(mostOverlapped) == 0 {
		return circles, nil
	}

	positioned := map[string]bool{}
	position := func(set string, p geometry.Point) {
		c := circles[set]
		c.X, c.Y = p.X, p.Y
		circles[set] = c
		positioned[set] = true
	}

	position(mostOverlapped[0].set, geometry.Point{})

	for _, sw := range mostOverlapped[1:] {
		var placed []setOverlap
		for _, so := range overlaps[sw.set] {
			if positioned[so.set] {
				placed = append(placed, so)
			}
		}
		if len(placed) == 0 {
			return nil, errors.New(errors.ErrCodeMissingOverlap,
				"no pairwise overlap information for set %q against any positioned set", sw.set)
		}
		sort.Slice(placed, func(i, j int) bool { return placed[i].size > placed[j].size })

		radius := circles[sw.set].Radius
		var points []geometry.Point
		distances := make([]float64, len(placed))
		for j, so := range placed {
			p1 := circles[so.set]
			d1, err := DistanceFromIntersectArea(radius, p1.Radius, so.size)
			if err != nil {
				return nil, err
			}
			distances[j] = d1

			points = append(points,
				geometry.Point{X: p1.X + d1, Y: p1.Y},
				geometry.Point{X: p1.X - d1, Y: p1.Y},
				geometry.Point{X: p1.X, Y: p1.Y + d1},
				geometry.Point{X: p1.X, Y: p1.Y - d1},
			)

			// The crossings of the two distance circles hit both pairwise
			// targets at once.
			for k := j + 1; k < len(placed); k++ {
				p2 := circles[placed[k].set]
				d2, err := DistanceFromIntersectArea(radius, p2.Radius, placed[k].size)
				if err != nil {
					return nil, err
				}
				points = append(points, geometry.CircleCircleIntersection(
					geometry.Circle{X: p1.X, Y: p1.Y, Radius: d1},
					geometry.Circle{X: p2.X, Y: p2.Y, Radius: d2},
				)...)
			}
		}

		bestLoss := math.Inf(1)
		bestPoint := points[0]
		for _, p := range points {
			c := circles[sw.set]
			c.X, c.Y = p.X, p.Y
			circles[sw.set] = c
			if localLoss := loss(circles, pairs); localLoss < bestLoss {
				bestLoss = localLoss
				bestPoint = p
			}
		}
		position(sw.set, bestPoint)
	}

	return circles, nil
}

// BestInitialLayout is the default initial placement. Greedy placement is
// sufficient for 2- and 3-circle inputs; for higher-order inputs it also
// runs constrained MDS and keeps whichever scores better, since greedy
// placement can get stuck in local minima there.
func BestInitialLayout(regions []Region, opts *Options) (Solution, error) {
	initial, err := GreedyLayout(regions, opts)
	if err != nil {
		return nil, err
	}

	if len(regions) >= mdsMinRegions {
		loss := SquaredLoss
		if opts != nil && opts.LossFunction != nil {
			loss = opts.LossFunction
		}
		constrained, err := ConstrainedMDSLayout(regions, opts)
		if err != nil {
			return nil, err
		}
		if loss(constrained, regions)+1e-8 < loss(initial, regions) {
			initial = constrained
		}
	}

	return initial, nil
}
