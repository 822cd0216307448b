package venn

import (
	"math"
	"math/rand"

	"github.com/vennlab/venn/pkg/geometry"
	"github.com/vennlab/venn/pkg/optimize"
)

// ConstrainedMDSLayout embeds the pairwise target distances into the plane
// by multidimensional scaling. The stress term for a pair is dropped when
// the current embedding already satisfies the pair's constraint: a subset
// pair (one circle should swallow the other) only pushes circles together,
// and a disjoint pair only pushes them apart. The stress is minimized with
// the conjugate-gradient optimizer and an analytic gradient, from several
// random starting configurations.
func ConstrainedMDSLayout(regions []Region, opts *Options) (Solution, error) {
	restarts := DefaultRestarts
	seed := DefaultSeed
	if opts != nil {
		if opts.Restarts != 0 {
			restarts = opts.Restarts
		}
		if opts.Seed != 0 {
			seed = opts.Seed
		}
	}

	var singles []Region
	indexOf := map[string]int{}
	for _, r := range regions {
		if len(r.Sets) == 1 {
			indexOf[r.Sets[0]] = len(singles)
			singles = append(singles, r)
		}
	}
	n := len(singles)

	distances := make([][]float64, n)
	constraints := make([][]float64, n)
	for i := range distances {
		distances[i] = optimize.Zeros(n)
		constraints[i] = optimize.Zeros(n)
	}

	for _, r := range regions {
		if len(r.Sets) != 2 {
			continue
		}
		left, right := indexOf[r.Sets[0]], indexOf[r.Sets[1]]
		r1 := math.Sqrt(singles[left].Size / math.Pi)
		r2 := math.Sqrt(singles[right].Size / math.Pi)
		distance, err := DistanceFromIntersectArea(r1, r2, r.Size)
		if err != nil {
			return nil, err
		}
		distances[left][right] = distance
		distances[right][left] = distance

		var c float64
		if r.Size+geometry.Small >= math.Min(singles[left].Size, singles[right].Size) {
			c = 1 // subset: don't penalize being closer than the target
		} else if r.Size <= geometry.Small {
			c = -1 // disjoint: don't penalize being farther than the target
		}
		constraints[left][right] = c
		constraints[right][left] = c
	}

	// Normalize distances so the optimization is scale-free, and scale the
	// result back up afterwards.
	var norm float64
	for _, row := range distances {
		rowNorm := optimize.Norm2(row)
		norm += rowNorm * rowNorm
	}
	norm = math.Sqrt(norm) / float64(n)
	if norm == 0 {
		norm = 1
	}
	for _, row := range distances {
		optimize.Scale(row, row, 1/norm)
	}

	obj := func(x, grad []float64) float64 {
		return mdsStress(x, grad, distances, constraints)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	var best optimize.Result
	for i := 0; i < restarts; i++ {
		initial := optimize.Zeros(n * 2)
		for j := range initial {
			initial[j] = rng.Float64()
		}
		current := optimize.ConjugateGradient(obj, initial, optimize.CGParams{})
		if i == 0 || current.Fx < best.Fx {
			best = current
		}
	}

	circles := make(Solution, n)
	for i, r := range singles {
		circles[r.Sets[0]] = geometry.Circle{
			X:      best.X[2*i] * norm,
			Y:      best.X[2*i+1] * norm,
			Radius: math.Sqrt(r.Size / math.Pi),
		}
	}
	return circles, nil
}

// mdsStress is the constrained MDS objective: summed squared difference
// between squared embedded distances and squared targets, skipping pairs
// whose constraint is already satisfied. It writes the analytic gradient
// with respect to every coordinate into grad.
func mdsStress(x, grad []float64, distances, constraints [][]float64) float64 {
	var loss float64
	for i := range grad {
		grad[i] = 0
	}

	for i := 0; i < len(distances); i++ {
		xi, yi := x[2*i], x[2*i+1]
		for j := i + 1; j < len(distances); j++ {
			xj, yj := x[2*j], x[2*j+1]
			dij := distances[i][j]
			constraint := constraints[i][j]

			squaredDistance := (xj-xi)*(xj-xi) + (yj-yi)*(yj-yi)
			dist := math.Sqrt(squaredDistance)
			delta := squaredDistance - dij*dij

			if (constraint > 0 && dist <= dij) || (constraint < 0 && dist >= dij) {
				continue
			}

			loss += 2 * delta * delta
			grad[2*i] += 4 * delta * (xi - xj)
			grad[2*i+1] += 4 * delta * (yi - yj)
			grad[2*j] += 4 * delta * (xj - xi)
			grad[2*j+1] += 4 * delta * (yj - yi)
		}
	}
	return loss
}
