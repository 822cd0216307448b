package optimize

import (
	"fmt"
	"math"
)

// checkLengths panics when two vectors that must be the same length are not.
// Mismatched lengths are a programming error, not a runtime condition, so
// the helpers fail fast the way gonum's floats package does.
func checkLengths(op string, a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("optimize: %s: vector lengths %d and %d do not match", op, len(a), len(b)))
	}
}

// Zeros returns a zero vector of length n.
func Zeros(n int) []float64 { return make([]float64, n) }

// Dot returns the dot product of a and b.
func Dot(a, b []float64) float64 {
	checkLengths("Dot", a, b)
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

// Norm2 returns the Euclidean norm of a.
func Norm2(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Scale stores c*v in dst.
func Scale(dst, v []float64, c float64) {
	checkLengths("Scale", dst, v)
	for i := range v {
		dst[i] = c * v[i]
	}
}

// WeightedSum stores w1*v1 + w2*v2 in dst. dst may alias either input.
func WeightedSum(dst []float64, w1 float64, v1 []float64, w2 float64, v2 []float64) {
	checkLengths("WeightedSum", dst, v1)
	checkLengths("WeightedSum", v1, v2)
	for i := range dst {
		dst[i] = w1*v1[i] + w2*v2[i]
	}
}
