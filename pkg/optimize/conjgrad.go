package optimize

import "math"

// Wolfe line-search constants: sufficient decrease (Armijo) and curvature.
const (
	wolfeC1 = 1e-6
	wolfeC2 = 0.1
)

// GradientFunc is an objective that also reports its gradient: it returns
// f(x) and stores ∇f(x) into grad, which has the same length as x.
type GradientFunc func(x, grad []float64) float64

// CGIteration is one entry of the optional conjugate-gradient history:
// the point, its objective value and gradient, and the accepted step size.
type CGIteration struct {
	X        []float64
	Fx       float64
	Gradient []float64
	Alpha    float64
}

// CGParams configures [ConjugateGradient]. Zero values select the defaults.
type CGParams struct {
	MaxIterations int            // default 20×dimension
	GradientTol   float64        // gradient norm below which to stop, default 1e-5
	History       *[]CGIteration // per-iteration diagnostics, recorded when non-nil
}

// pointGradient is an immutable-by-convention (point, value, gradient)
// record. The loop keeps two of them and swaps the pointers each iteration
// instead of aliasing buffers.
type pointGradient struct {
	x       []float64
	fx      float64
	fxprime []float64
}

// ConjugateGradient minimizes f starting from initial using the
// Polak–Ribière nonlinear conjugate-gradient method.
//
// The search direction starts at steepest descent. Each iteration runs a
// Wolfe-condition line search along the current direction; on success the
// direction is updated with the Polak–Ribière β, clamped non-negative so
// the update always yields a descent direction, and on line-search failure
// the direction resets to steepest descent. Iteration stops when the
// gradient norm drops below the tolerance or the budget runs out.
func ConjugateGradient(f GradientFunc, initial []float64, params CGParams) Result {
	n := len(initial)
	maxIterations := params.MaxIterations
	if maxIterations == 0 {
		maxIterations = n * 20
	}
	gradientTol := params.GradientTol
	if gradientTol == 0 {
		gradientTol = 1e-5
	}

	current := &pointGradient{x: append([]float64(nil), initial...), fxprime: Zeros(n)}
	next := &pointGradient{x: Zeros(n), fxprime: Zeros(n)}
	yk := Zeros(n)
	pk := Zeros(n)
	alpha := 1.0

	current.fx = f(current.x, current.fxprime)
	Scale(pk, current.fxprime, -1)

	for i := 0; i < maxIterations; i++ {
		alpha = wolfeLineSearch(f, pk, current, next, alpha)

		if params.History != nil {
			*params.History = append(*params.History, CGIteration{
				X:        append([]float64(nil), current.x...),
				Fx:       current.fx,
				Gradient: append([]float64(nil), current.fxprime...),
				Alpha:    alpha,
			})
		}

		if alpha == 0 {
			// No step satisfied the Wolfe conditions; restart from steepest
			// descent next iteration.
			Scale(pk, current.fxprime, -1)
		} else {
			WeightedSum(yk, 1, next.fxprime, -1, current.fxprime)

			deltaK := Dot(current.fxprime, current.fxprime)
			betaK := math.Max(0, Dot(yk, next.fxprime)/deltaK)

			WeightedSum(pk, betaK, pk, -1, next.fxprime)

			current, next = next, current
		}

		if Norm2(current.fxprime) <= gradientTol {
			break
		}
	}

	return Result{X: current.x, Fx: current.fx}
}

// wolfeLineSearch finds a step size along direction pk from current that
// satisfies the sufficient-decrease and curvature conditions. On success it
// leaves the stepped point in next and returns the step size; it returns 0
// on total failure, signaling the caller to fall back to steepest descent.
//
// The outer loop doubles the trial step until the conditions either hold or
// bracket a valid interval, which the inner zoom then narrows by bisection.
func wolfeLineSearch(f GradientFunc, pk []float64, current, next *pointGradient, a float64) float64 {
	phi0 := current.fx
	phiPrime0 := Dot(current.fxprime, pk)
	phi, phiOld := phi0, phi0
	phiPrime := phiPrime0
	a0 := 0.0

	if a == 0 {
		a = 1
	}

	zoom := func(aLo, aHigh, phiLo float64) float64 {
		for iteration := 0; iteration < 16; iteration++ {
			a = (aLo + aHigh) / 2
			WeightedSum(next.x, 1.0, current.x, a, pk)
			phi = f(next.x, next.fxprime)
			next.fx = phi
			phiPrime = Dot(next.fxprime, pk)

			if phi > phi0+wolfeC1*a*phiPrime0 || phi >= phiLo {
				aHigh = a
			} else {
				if math.Abs(phiPrime) <= -wolfeC2*phiPrime0 {
					return a
				}
				if phiPrime*(aHigh-aLo) >= 0 {
					aHigh = aLo
				}
				aLo = a
				phiLo = phi
			}
		}
		return 0
	}

	for iteration := 0; iteration < 10; iteration++ {
		WeightedSum(next.x, 1.0, current.x, a, pk)
		phi = f(next.x, next.fxprime)
		next.fx = phi
		phiPrime = Dot(next.fxprime, pk)

		if phi > phi0+wolfeC1*a*phiPrime0 || (iteration > 0 && phi >= phiOld) {
			return zoom(a0, a, phiOld)
		}
		if math.Abs(phiPrime) <= -wolfeC2*phiPrime0 {
			return a
		}
		if phiPrime >= 0 {
			return zoom(a, a0, phi)
		}

		phiOld = phi
		a0 = a
		a *= 2
	}

	return a
}
