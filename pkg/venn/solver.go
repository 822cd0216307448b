package venn

import (
	"math"
	"time"

	"github.com/vennlab/venn/pkg/geometry"
	"github.com/vennlab/venn/pkg/observability"
	"github.com/vennlab/venn/pkg/optimize"
)

// ComputeLayout computes circle positions and radii whose region areas
// best approximate the desired sizes.
//
// Zero-size singleton regions are removed before layout, together with
// every region referencing them, and pairs with no declared overlap are
// treated as overlapping by zero. Each remaining set's radius is fixed
// from its singleton size, the circles are placed by opts.InitialLayout,
// and the placement is refined by minimizing opts.LossFunction over the
// flattened center coordinates with opts.Refiner. A nil opts selects all
// defaults.
//
// The returned Solution is a fresh value owned by the caller; subsequent
// calls never mutate it.
func ComputeLayout(regions []Region, opts *Options) (Solution, error) {
	start := time.Now()
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := validateRegions(regions); err != nil {
		return nil, err
	}

	regions = filterEmptySets(regions)
	ids := setIDs(regions)
	if len(ids) == 0 {
		return Solution{}, nil
	}
	regions = addMissingPairs(regions)

	observability.Layout().OnLayoutStart(len(regions), len(ids))

	circles, err := opts.InitialLayout(regions, opts)
	if err != nil {
		observability.Layout().OnLayoutComplete(len(regions), time.Since(start), err)
		return nil, err
	}
	placementLoss := opts.LossFunction(circles, regions)
	observability.Layout().OnPlacementComplete(len(ids), placementLoss, time.Since(start))
	opts.Logger.Debug("initial placement done", "sets", len(ids), "loss", placementLoss)

	initial := make([]float64, 0, 2*len(ids))
	for _, id := range ids {
		c := circles[id]
		initial = append(initial, c.X, c.Y)
	}

	// The radii stay fixed; only the centers move during refinement.
	loss := func(values []float64) float64 {
		current := make(Solution, len(ids))
		for i, id := range ids {
			current[id] = geometry.Circle{X: values[2*i], Y: values[2*i+1], Radius: circles[id].Radius}
		}
		return opts.LossFunction(current, regions)
	}

	refineStart := time.Now()
	result := opts.Refiner(loss, initial, opts)
	observability.Layout().OnRefineComplete(len(ids), result.Fx, time.Since(refineStart))
	opts.Logger.Debug("refinement done", "loss", result.Fx, "duration", time.Since(refineStart))

	solution := make(Solution, len(ids))
	for i, id := range ids {
		solution[id] = geometry.Circle{X: result.X[2*i], Y: result.X[2*i+1], Radius: circles[id].Radius}
	}

	observability.Layout().OnLayoutComplete(len(regions), time.Since(start), nil)
	return solution, nil
}

// RefineConjugateGradient is the default refiner: conjugate-gradient
// minimization of the loss, with the gradient estimated by central
// differences scaled to each coordinate's magnitude.
func RefineConjugateGradient(loss func([]float64) float64, initial []float64, opts *Options) optimize.Result {
	maxIterations := DefaultMaxIterations
	if opts != nil && opts.MaxIterations != 0 {
		maxIterations = opts.MaxIterations
	}

	grad := func(x, g []float64) float64 {
		fx := loss(x)
		for i := range x {
			h := 1e-6 * (1 + math.Abs(x[i]))
			old := x[i]
			x[i] = old + h
			fPlus := loss(x)
			x[i] = old - h
			fMinus := loss(x)
			x[i] = old
			g[i] = (fPlus - fMinus) / (2 * h)
		}
		return fx
	}

	return optimize.ConjugateGradient(grad, initial, optimize.CGParams{MaxIterations: maxIterations})
}

// RefineNelderMead refines with the derivative-free simplex minimizer
// instead. Slower to converge than the default, but independent of the
// loss function's smoothness.
func RefineNelderMead(loss func([]float64) float64, initial []float64, opts *Options) optimize.Result {
	maxIterations := DefaultMaxIterations
	if opts != nil && opts.MaxIterations != 0 {
		maxIterations = opts.MaxIterations
	}
	return optimize.NelderMead(loss, initial, optimize.NelderMeadParams{MaxIterations: maxIterations})
}
