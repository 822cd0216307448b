package optimize

import (
	"math"
	"testing"
)

func quadraticGrad(x, grad []float64) float64 {
	dx := x[0] - 3
	dy := x[1] + 2
	grad[0] = 2 * dx
	grad[1] = 2 * dy
	return dx*dx + dy*dy
}

func TestConjugateGradientQuadratic(t *testing.T) {
	result := ConjugateGradient(quadraticGrad, []float64{0, 0}, CGParams{})

	if math.Abs(result.X[0]-3) > 1e-4 || math.Abs(result.X[1]+2) > 1e-4 {
		t.Errorf("minimum at %v, want near (3, -2)", result.X)
	}
	if result.Fx > 1e-8 {
		t.Errorf("Fx = %v, want near 0", result.Fx)
	}
}

func TestConjugateGradientBanana(t *testing.T) {
	banana := func(x, grad []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		grad[0] = -2*a - 400*b*x[0]
		grad[1] = 200 * b
		return a*a + 100*b*b
	}
	result := ConjugateGradient(banana, []float64{-1.2, 1}, CGParams{MaxIterations: 2000})

	if math.Abs(result.X[0]-1) > 1e-2 || math.Abs(result.X[1]-1) > 1e-2 {
		t.Errorf("minimum at %v, want near (1, 1)", result.X)
	}
}

func TestConjugateGradientAlreadyAtMinimum(t *testing.T) {
	result := ConjugateGradient(quadraticGrad, []float64{3, -2}, CGParams{})

	if result.Fx != 0 {
		t.Errorf("Fx = %v, want 0", result.Fx)
	}
	if result.X[0] != 3 || result.X[1] != -2 {
		t.Errorf("X = %v, want (3, -2)", result.X)
	}
}

func TestConjugateGradientHistory(t *testing.T) {
	var history []CGIteration
	ConjugateGradient(quadraticGrad, []float64{0, 0}, CGParams{History: &history})

	if len(history) == 0 {
		t.Fatal("history is empty")
	}
	first := history[0]
	if first.X[0] != 0 || first.X[1] != 0 {
		t.Errorf("first history point %v, want the initial point", first.X)
	}
	if len(first.Gradient) != 2 {
		t.Errorf("gradient length = %d, want 2", len(first.Gradient))
	}
}

// With exact gradients a smooth quadratic needs far fewer objective
// improvements from conjugate gradients than from the simplex method.
func TestConjugateGradientFasterThanNelderMead(t *testing.T) {
	var cgHistory []CGIteration
	ConjugateGradient(quadraticGrad, []float64{10, 10}, CGParams{History: &cgHistory})

	var nmHistory []SimplexPoint
	NelderMead(quadratic, []float64{10, 10}, NelderMeadParams{History: &nmHistory})

	if len(cgHistory) >= len(nmHistory) {
		t.Errorf("conjugate gradient took %d iterations, simplex %d", len(cgHistory), len(nmHistory))
	}
}
