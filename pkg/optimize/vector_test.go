package optimize

import (
	"math"
	"testing"
)

func TestZeros(t *testing.T) {
	v := Zeros(3)
	if len(v) != 3 {
		t.Fatalf("len = %d, want 3", len(v))
	}
	for i, x := range v {
		if x != 0 {
			t.Errorf("v[%d] = %v, want 0", i, x)
		}
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{
			name: "empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "orthogonal",
			a:    []float64{1, 0},
			b:    []float64{0, 1},
			want: 0,
		},
		{
			name: "general",
			a:    []float64{1, 2, 3},
			b:    []float64{4, -5, 6},
			want: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); got != tt.want {
				t.Errorf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Dot([]float64{1, 2}, []float64{1})
}

func TestNorm2(t *testing.T) {
	if got, want := Norm2([]float64{3, 4}), 5.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Norm2() = %v, want %v", got, want)
	}
	if got := Norm2(nil); got != 0 {
		t.Errorf("Norm2(nil) = %v, want 0", got)
	}
}

func TestScale(t *testing.T) {
	dst := make([]float64, 3)
	Scale(dst, []float64{1, -2, 3}, 2)
	want := []float64{2, -4, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestWeightedSum(t *testing.T) {
	dst := make([]float64, 2)
	WeightedSum(dst, 2, []float64{1, 1}, -1, []float64{3, 5})
	if dst[0] != -1 || dst[1] != -3 {
		t.Errorf("dst = %v, want [-1 -3]", dst)
	}
}

// WeightedSum must allow its destination to alias an input, since the
// optimizers update vectors in place.
func TestWeightedSumAliasing(t *testing.T) {
	v := []float64{1, 2}
	WeightedSum(v, 1, v, 3, []float64{1, 1})
	if v[0] != 4 || v[1] != 5 {
		t.Errorf("v = %v, want [4 5]", v)
	}
}
