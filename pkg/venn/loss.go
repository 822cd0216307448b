package venn

import (
	"math"

	"github.com/vennlab/venn/pkg/geometry"
)

// regionArea computes the realized area of a region under the candidate
// circles: the closed-form lens area for pairs, the full arc/polygon
// decomposition for higher-order intersections.
func regionArea(circles Solution, r Region) float64 {
	if len(r.Sets) == 2 {
		left, right := circles[r.Sets[0]], circles[r.Sets[1]]
		return geometry.CircleOverlap(left.Radius, right.Radius,
			geometry.Distance(left.Center(), right.Center()))
	}

	subset := make([]geometry.Circle, len(r.Sets))
	for i, id := range r.Sets {
		subset[i] = circles[id]
	}
	return geometry.IntersectionArea(subset, nil)
}

// SquaredLoss is the default layout loss: the weighted sum of squared
// differences between each intersection region's desired and realized
// area. Singleton regions contribute nothing, since radii are fixed from
// their sizes.
func SquaredLoss(circles Solution, regions []Region) float64 {
	var output float64
	for _, r := range regions {
		if len(r.Sets) < 2 {
			continue
		}
		diff := regionArea(circles, r) - r.Size
		output += r.weight() * diff * diff
	}
	return output
}

// LogRatioLoss is a relative-error variant of SquaredLoss: each region
// contributes the squared log of the ratio between realized and desired
// area, so small and large regions are penalized proportionally. Useful
// when region sizes span orders of magnitude.
func LogRatioLoss(circles Solution, regions []Region) float64 {
	var output float64
	for _, r := range regions {
		if len(r.Sets) < 2 {
			continue
		}
		ratio := math.Log((regionArea(circles, r) + 1) / (r.Size + 1))
		output += r.weight() * ratio * ratio
	}
	return output
}
