package venn

import (
	"math"
	"sort"

	"github.com/vennlab/venn/pkg/geometry"
)

// SetCircle pairs a circle with the set identifier it belongs to, for
// callers that need to order circles explicitly during normalization.
type SetCircle struct {
	SetID string
	geometry.Circle
}

// OrientationOrder is a strict ordering over a cluster's circles. The
// first circle under the order anchors the cluster and the second defines
// the orientation axis. Nil means order by descending radius.
type OrientationOrder func(a, b SetCircle) bool

// bounds is an axis-aligned bounding box.
type bounds struct {
	xMin, xMax, yMin, yMax float64
}

func (b bounds) width() float64  { return b.xMax - b.xMin }
func (b bounds) height() float64 { return b.yMax - b.yMin }

func circleBounds(circles []SetCircle) bounds {
	b := bounds{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}
	for _, c := range circles {
		b.xMin = math.Min(b.xMin, c.X-c.Radius)
		b.xMax = math.Max(b.xMax, c.X+c.Radius)
		b.yMin = math.Min(b.yMin, c.Y-c.Radius)
		b.yMax = math.Max(b.yMax, c.Y+c.Radius)
	}
	return b
}

// disjointClusters splits the circles into connected components, where two
// circles are connected when they overlap. Union-find over circle indices.
func disjointClusters(circles []SetCircle) [][]SetCircle {
	parent := make([]int, len(circles))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			maxDistance := circles[i].Radius + circles[j].Radius
			if geometry.Distance(circles[i].Center(), circles[j].Center())+geometry.Small < maxDistance {
				parent[find(i)] = find(j)
			}
		}
	}

	groups := map[int][]SetCircle{}
	var roots []int
	for i, c := range circles {
		root := find(i)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], c)
	}

	clusters := make([][]SetCircle, 0, len(groups))
	for _, root := range roots {
		clusters = append(clusters, groups[root])
	}
	return clusters
}

// orientateCircles rotates, reflects and translates a cluster in place so
// that its largest circle sits at the origin, its second-largest lies at
// the orientation angle from the first, and its third-largest is below the
// plane through the first two.
func orientateCircles(circles []SetCircle, orientation float64, order OrientationOrder) {
	if order == nil {
		sort.SliceStable(circles, func(i, j int) bool { return circles[i].Radius > circles[j].Radius })
	} else {
		sort.SliceStable(circles, func(i, j int) bool { return order(circles[i], circles[j]) })
	}

	// Shift so the first circle is at the origin.
	if len(circles) > 0 {
		largestX, largestY := circles[0].X, circles[0].Y
		for i := range circles {
			circles[i].X -= largestX
			circles[i].Y -= largestY
		}
	}

	if len(circles) == 2 {
		// A fully nested pair has no usable angle between centers; slide
		// the inner circle off to one side instead.
		dist := geometry.Distance(circles[0].Center(), circles[1].Center())
		if dist < math.Abs(circles[1].Radius-circles[0].Radius) {
			circles[1].X = circles[0].X + circles[0].Radius - circles[1].Radius - 1e-10
			circles[1].Y = circles[0].Y
		}
	}

	if len(circles) > 1 {
		// Rotate so the second circle is at the orientation angle from the
		// first.
		rotation := math.Atan2(circles[1].X, circles[1].Y) - orientation
		c, s := math.Cos(rotation), math.Sin(rotation)
		for i := range circles {
			x, y := circles[i].X, circles[i].Y
			circles[i].X = c*x - s*y
			circles[i].Y = s*x + c*y
		}
	}

	if len(circles) > 2 {
		// Mirror the whole cluster if the third circle ended up above the
		// plane through the first two.
		angle := math.Atan2(circles[2].X, circles[2].Y) - orientation
		for angle < 0 {
			angle += 2 * math.Pi
		}
		for angle > 2*math.Pi {
			angle -= 2 * math.Pi
		}
		if angle > math.Pi {
			slope := circles[1].Y / (1e-10 + circles[1].X)
			for i := range circles {
				d := (circles[i].X + slope*circles[i].Y) / (1 + slope*slope)
				circles[i].X = 2*d - circles[i].X
				circles[i].Y = 2*d*slope - circles[i].Y
			}
		}
	}
}

// NormalizeSolution rotates and reflects the raw solution into a canonical
// orientation. Disjoint diagram components are oriented independently and
// then packed onto a grid, largest component first. Orientation affects
// presentation only, never layout error. A nil order sorts each
// component's circles by descending radius. An empty solution stays empty.
func NormalizeSolution(solution Solution, orientation float64, order OrientationOrder) Solution {
	circles := make([]SetCircle, 0, len(solution))
	for _, id := range sortedIDs(solution) {
		circles = append(circles, SetCircle{SetID: id, Circle: solution[id]})
	}
	if len(circles) == 0 {
		return Solution{}
	}

	clusters := disjointClusters(circles)
	type sizedCluster struct {
		circles []SetCircle
		bounds  bounds
		size    float64
	}
	sized := make([]sizedCluster, len(clusters))
	for i, cluster := range clusters {
		orientateCircles(cluster, orientation, order)
		b := circleBounds(cluster)
		sized[i] = sizedCluster{circles: cluster, bounds: b, size: b.width() * b.height()}
	}
	sort.SliceStable(sized, func(i, j int) bool { return sized[i].size > sized[j].size })

	// Largest cluster anchors the layout; the rest are packed around it on
	// a grid, three at a time (right, below, diagonal).
	packed := sized[0].circles
	returnBounds := sized[0].bounds
	spacing := returnBounds.width() / 50

	addCluster := func(cluster *sizedCluster, right, bottom bool) {
		if cluster == nil {
			return
		}
		b := cluster.bounds
		var xOffset, yOffset float64
		if right {
			xOffset = returnBounds.xMax - b.xMin + spacing
		} else {
			xOffset = returnBounds.xMax - b.xMax
			centering := b.width()/2 - returnBounds.width()/2
			if centering < 0 {
				xOffset += centering
			}
		}
		if bottom {
			yOffset = returnBounds.yMax - b.yMin + spacing
		} else {
			yOffset = returnBounds.yMax - b.yMax
			centering := b.height()/2 - returnBounds.height()/2
			if centering < 0 {
				yOffset += centering
			}
		}
		for _, c := range cluster.circles {
			c.X += xOffset
			c.Y += yOffset
			packed = append(packed, c)
		}
	}

	clusterAt := func(i int) *sizedCluster {
		if i < len(sized) {
			return &sized[i]
		}
		return nil
	}

	for index := 1; index < len(sized); index += 3 {
		addCluster(clusterAt(index), true, false)
		addCluster(clusterAt(index+1), false, true)
		addCluster(clusterAt(index+2), true, true)
		returnBounds = circleBounds(packed)
	}

	ret := make(Solution, len(packed))
	for _, c := range packed {
		ret[c.SetID] = c.Circle
	}
	return ret
}

// ScaleSolution scales and translates all circles uniformly so the diagram
// fits a width×height frame inset by padding on every side, preserving
// relative proportions. A degenerate (zero-extent) solution is returned
// unscaled.
func ScaleSolution(solution Solution, width, height, padding float64) Solution {
	ids := sortedIDs(solution)
	circles := make([]SetCircle, 0, len(ids))
	for _, id := range ids {
		circles = append(circles, SetCircle{SetID: id, Circle: solution[id]})
	}

	width -= 2 * padding
	height -= 2 * padding

	b := circleBounds(circles)
	if b.width() <= 0 || b.height() <= 0 {
		out := make(Solution, len(solution))
		for id, c := range solution {
			out[id] = c
		}
		return out
	}

	xScaling := width / b.width()
	yScaling := height / b.height()
	scaling := math.Min(xScaling, yScaling)

	// Center the diagram within the frame.
	xOffset := (width - b.width()*scaling) / 2
	yOffset := (height - b.height()*scaling) / 2

	scaled := make(Solution, len(circles))
	for _, c := range circles {
		scaled[c.SetID] = geometry.Circle{
			X:      padding + xOffset + (c.X-b.xMin)*scaling,
			Y:      padding + yOffset + (c.Y-b.yMin)*scaling,
			Radius: scaling * c.Radius,
		}
	}
	return scaled
}

// NormalizeAndScale canonicalizes the raw solution's orientation and maps
// it into a width×height pixel frame with padding.
func NormalizeAndScale(solution Solution, width, height, padding, orientation float64, order OrientationOrder) Solution {
	return ScaleSolution(NormalizeSolution(solution, orientation, order), width, height, padding)
}

// sortedIDs returns the solution's set identifiers in sorted order, for
// deterministic iteration.
func sortedIDs(solution Solution) []string {
	ids := make([]string, 0, len(solution))
	for id := range solution {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
