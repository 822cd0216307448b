package optimize

import (
	"math"

	"github.com/vennlab/venn/pkg/errors"
)

// BisectParams configures [Bisect]. Zero values select the defaults.
type BisectParams struct {
	MaxIterations int     // default 100
	Tolerance     float64 // bracket width at which to stop, default 1e-10
}

// Bisect finds a root of f inside the bracket [a, b] by repeated halving.
//
// The bracket must satisfy the opposite-sign precondition f(a)*f(b) ≤ 0;
// violating it is a caller contract error, reported rather than guessed
// around. If either endpoint is already an exact root it is returned
// immediately.
func Bisect(f func(float64) float64, a, b float64, params BisectParams) (float64, error) {
	maxIterations := params.MaxIterations
	if maxIterations == 0 {
		maxIterations = 100
	}
	tolerance := params.Tolerance
	if tolerance == 0 {
		tolerance = 1e-10
	}

	fA, fB := f(a), f(b)
	delta := b - a

	if fA*fB > 0 {
		return 0, errors.New(errors.ErrCodeInvalidBracket,
			"bisect endpoints must have opposite signs: f(%v) = %v, f(%v) = %v", a, fA, b, fB)
	}
	if fA == 0 {
		return a, nil
	}
	if fB == 0 {
		return b, nil
	}

	for i := 0; i < maxIterations; i++ {
		delta /= 2
		mid := a + delta
		fMid := f(mid)

		if fMid*fA >= 0 {
			a = mid
		}

		if math.Abs(delta) < tolerance {
			return mid, nil
		}
	}

	return a + delta, nil
}
