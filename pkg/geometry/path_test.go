package geometry

import (
	"testing"

	"github.com/vennlab/venn/pkg/errors"
)

func TestCirclePathRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		circle Circle
	}{
		{
			name:   "origin",
			circle: Circle{X: 0, Y: 0, Radius: 1},
		},
		{
			name:   "offset center",
			circle: Circle{X: 12.5, Y: -7.25, Radius: 3.75},
		},
		{
			name:   "non-terminating decimals",
			circle: Circle{X: 1.0 / 3.0, Y: 2.0 / 7.0, Radius: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CircleFromPath(CirclePath(tt.circle))
			if err != nil {
				t.Fatalf("CircleFromPath() error: %v", err)
			}
			if got != tt.circle {
				t.Errorf("round trip = %+v, want %+v", got, tt.circle)
			}
		})
	}
}

func TestCirclePathFormat(t *testing.T) {
	got := CirclePath(Circle{X: 1, Y: 2, Radius: 3})
	want := "M 1 2 m -3 0 a 3 3 0 1 0 6 0 a 3 3 0 1 0 -6 0"
	if got != want {
		t.Errorf("CirclePath() = %q, want %q", got, want)
	}
}

func TestCircleFromPathErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{
			name: "empty path",
			path: "",
		},
		{
			name: "too few tokens",
			path: "M 1 2",
		},
		{
			name: "bad x coordinate",
			path: "M one 2 m -3",
		},
		{
			name: "bad radius",
			path: "M 1 2 m radius",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CircleFromPath(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.GetCode(err); got != errors.ErrCodeInvalidPath {
				t.Errorf("error code = %v, want %v", got, errors.ErrCodeInvalidPath)
			}
		})
	}
}
