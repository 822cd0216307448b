package venn

import (
	"path/filepath"
	"testing"

	"github.com/vennlab/venn/pkg/errors"
	"github.com/vennlab/venn/pkg/geometry"
)

func TestSolutionRoundTrip(t *testing.T) {
	s := Solution{
		"A":       geometry.Circle{X: 1.5, Y: -2, Radius: 3},
		"B":       geometry.Circle{X: 0, Y: 0, Radius: 1},
		"β-cells": geometry.Circle{X: 4, Y: 4, Radius: 0.5},
	}

	data, err := MarshalSolution(s)
	if err != nil {
		t.Fatalf("MarshalSolution() error: %v", err)
	}

	got, err := UnmarshalSolution(data)
	if err != nil {
		t.Fatalf("UnmarshalSolution() error: %v", err)
	}
	if len(got) != len(s) {
		t.Fatalf("got %d circles, want %d", len(got), len(s))
	}
	for id, c := range s {
		if got[id] != c {
			t.Errorf("circle %q = %+v, want %+v", id, got[id], c)
		}
	}
}

func TestUnmarshalSolutionErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode errors.Code
	}{
		{
			name:     "malformed json",
			data:     `{"A": `,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "negative radius",
			data:     `{"A": {"x": 0, "y": 0, "radius": -1}}`,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "invalid set identifier",
			data:     `{"": {"x": 0, "y": 0, "radius": 1}}`,
			wantCode: errors.ErrCodeInvalidSetID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalSolution([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestSolutionFileRoundTrip(t *testing.T) {
	s := Solution{
		"A": geometry.Circle{X: 1, Y: 2, Radius: 3},
	}
	path := filepath.Join(t.TempDir(), "solution.json")

	if err := WriteSolutionFile(s, path); err != nil {
		t.Fatalf("WriteSolutionFile() error: %v", err)
	}
	got, err := ReadSolutionFile(path)
	if err != nil {
		t.Fatalf("ReadSolutionFile() error: %v", err)
	}
	if got["A"] != s["A"] {
		t.Errorf("circle A = %+v, want %+v", got["A"], s["A"])
	}
}

func TestReadSolutionFileMissing(t *testing.T) {
	_, err := ReadSolutionFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %v, want %v", got, errors.ErrCodeInvalidInput)
	}
}
