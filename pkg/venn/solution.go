package venn

import (
	"encoding/json"
	"os"

	"github.com/vennlab/venn/pkg/errors"
	"github.com/vennlab/venn/pkg/geometry"
)

// Solution maps each set identifier to its laid-out circle. It is the sole
// persisted artifact of the layout solver: immutable once returned, and
// the input to normalization, scaling, and label placement.
type Solution map[string]geometry.Circle

// MarshalSolution serializes a Solution to pretty-printed JSON bytes.
func MarshalSolution(s Solution) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalSolution deserializes JSON bytes into a Solution.
// Validates that every circle has a non-negative radius.
func UnmarshalSolution(data []byte) (Solution, error) {
	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal solution")
	}

	for id, c := range s {
		if err := errors.ValidateSetID(id); err != nil {
			return nil, err
		}
		if c.Radius < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "circle %q has negative radius %v", id, c.Radius)
		}
	}

	return s, nil
}

// WriteSolutionFile writes a Solution to a JSON file.
func WriteSolutionFile(s Solution, path string) error {
	data, err := MarshalSolution(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSolutionFile reads a Solution from a JSON file.
func ReadSolutionFile(path string) (Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return UnmarshalSolution(data)
}
