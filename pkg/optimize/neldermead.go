package optimize

import (
	"math"
	"sort"
)

// SimplexPoint is one vertex of a Nelder–Mead simplex. ID is assigned once
// at simplex construction and disambiguates vertices of equal objective
// value during sorting, keeping the sort stable across iterations.
type SimplexPoint struct {
	X  []float64
	Fx float64
	ID int
}

// Result is the terminal state of a minimization: the best coordinate
// vector found and its objective value.
type Result struct {
	X  []float64
	Fx float64
}

// NelderMeadParams configures [NelderMead]. Zero-valued fields select the
// defaults noted per field; note that the default contraction coefficient
// Psi is negative.
type NelderMeadParams struct {
	MaxIterations int     // default 200×dimension
	NonZeroDelta  float64 // multiplicative perturbation for non-zero initial coordinates, default 1.05
	ZeroDelta     float64 // additive perturbation for zero initial coordinates, default 0.001
	MinErrorDelta float64 // best-to-worst objective gap below which to stop, default 1e-6
	MinTolerance  float64 // best-to-second vertex coordinate spread below which to stop, default 1e-5

	// Simplex transform coefficients: reflection, expansion, contraction,
	// shrink. Defaults are the standard 1, 2, -0.5, 0.5.
	Rho, Chi, Psi, Sigma float64

	// History, when non-nil, receives the best vertex at each iteration.
	History *[]SimplexPoint
}

func (p *NelderMeadParams) setDefaults(dim int) {
	if p.MaxIterations == 0 {
		p.MaxIterations = dim * 200
	}
	if p.NonZeroDelta == 0 {
		p.NonZeroDelta = 1.05
	}
	if p.ZeroDelta == 0 {
		p.ZeroDelta = 0.001
	}
	if p.MinErrorDelta == 0 {
		p.MinErrorDelta = 1e-6
	}
	if p.MinTolerance == 0 {
		p.MinTolerance = 1e-5
	}
	if p.Rho == 0 {
		p.Rho = 1
	}
	if p.Chi == 0 {
		p.Chi = 2
	}
	if p.Psi == 0 {
		p.Psi = -0.5
	}
	if p.Sigma == 0 {
		p.Sigma = 0.5
	}
}

// NelderMead minimizes f over an n-dimensional coordinate vector using the
// Nelder–Mead downhill simplex method, starting from x0.
//
// The initial simplex has n+1 vertices: x0 itself plus one vertex per
// coordinate, perturbed multiplicatively when the coordinate is non-zero
// and by a small additive delta when it is zero. Each iteration sorts the
// vertices, reflects the worst vertex through the centroid of the rest, and
// applies the standard reflect/expand/contract/shrink decision tree.
// Iteration stops when both the best-to-worst objective gap and the
// best-to-second-vertex coordinate spread fall under their tolerances, or
// when the budget runs out; the best vertex found so far is returned either
// way.
func NelderMead(f func([]float64) float64, x0 []float64, params NelderMeadParams) Result {
	n := len(x0)
	params.setDefaults(n)

	simplex := make([]SimplexPoint, n+1)
	simplex[0] = SimplexPoint{X: append([]float64(nil), x0...), ID: 0}
	simplex[0].Fx = f(simplex[0].X)
	for i := 0; i < n; i++ {
		point := append([]float64(nil), x0...)
		if point[i] != 0 {
			point[i] *= params.NonZeroDelta
		} else {
			point[i] = params.ZeroDelta
		}
		simplex[i+1] = SimplexPoint{X: point, ID: i + 1}
		simplex[i+1].Fx = f(point)
	}

	sortSimplex := func() {
		sort.Slice(simplex, func(i, j int) bool {
			if simplex[i].Fx != simplex[j].Fx {
				return simplex[i].Fx < simplex[j].Fx
			}
			return simplex[i].ID < simplex[j].ID
		})
	}

	replaceWorst := func(x []float64, fx float64) {
		copy(simplex[n].X, x)
		simplex[n].Fx = fx
	}

	centroid := Zeros(n)
	reflected := Zeros(n)
	contracted := Zeros(n)
	expanded := Zeros(n)

	for iteration := 0; iteration < params.MaxIterations; iteration++ {
		sortSimplex()

		if params.History != nil {
			best := simplex[0]
			best.X = append([]float64(nil), best.X...)
			*params.History = append(*params.History, best)
		}

		maxDiff := 0.0
		for i := 0; i < n; i++ {
			maxDiff = math.Max(maxDiff, math.Abs(simplex[0].X[i]-simplex[1].X[i]))
		}
		if math.Abs(simplex[0].Fx-simplex[n].Fx) < params.MinErrorDelta && maxDiff < params.MinTolerance {
			break
		}

		// Centroid of all but the worst vertex.
		for i := 0; i < n; i++ {
			centroid[i] = 0
			for j := 0; j < n; j++ {
				centroid[i] += simplex[j].X[i]
			}
			centroid[i] /= float64(n)
		}

		worst := simplex[n]
		WeightedSum(reflected, 1+params.Rho, centroid, -params.Rho, worst.X)
		reflectedFx := f(reflected)

		if reflectedFx < simplex[0].Fx {
			// Best point seen: try expanding further in the same direction.
			WeightedSum(expanded, 1+params.Chi, centroid, -params.Chi, worst.X)
			expandedFx := f(expanded)
			if expandedFx < reflectedFx {
				replaceWorst(expanded, expandedFx)
			} else {
				replaceWorst(reflected, reflectedFx)
			}
		} else if reflectedFx >= simplex[n-1].Fx {
			shouldShrink := false

			if reflectedFx > worst.Fx {
				// Inside contraction.
				WeightedSum(contracted, 1+params.Psi, centroid, -params.Psi, worst.X)
				contractedFx := f(contracted)
				if contractedFx < worst.Fx {
					replaceWorst(contracted, contractedFx)
				} else {
					shouldShrink = true
				}
			} else {
				// Outside contraction.
				WeightedSum(contracted, 1-params.Psi*params.Rho, centroid, params.Psi*params.Rho, worst.X)
				contractedFx := f(contracted)
				if contractedFx < reflectedFx {
					replaceWorst(contracted, contractedFx)
				} else {
					shouldShrink = true
				}
			}

			if shouldShrink {
				if params.Sigma >= 1 {
					break
				}
				// Shrink the whole simplex toward the best vertex.
				for i := 1; i < len(simplex); i++ {
					WeightedSum(simplex[i].X, 1-params.Sigma, simplex[0].X, params.Sigma, simplex[i].X)
					simplex[i].Fx = f(simplex[i].X)
				}
			}
		} else {
			replaceWorst(reflected, reflectedFx)
		}
	}

	sortSimplex()
	return Result{X: simplex[0].X, Fx: simplex[0].Fx}
}
