package venn

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vennlab/venn/pkg/optimize"
)

// Default values for the layout pipeline.
const (
	// DefaultMaxIterations bounds the refinement optimizer.
	DefaultMaxIterations = 500

	// DefaultRestarts is the number of random restarts for the constrained
	// MDS initial layout.
	DefaultRestarts = 10

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultOrientation puts the two largest circles side by side on the
	// horizontal axis.
	DefaultOrientation = math.Pi / 2

	// mdsMinRegions is the input size at which BestInitialLayout starts
	// trying constrained MDS in addition to greedy placement.
	mdsMinRegions = 8
)

// LossFunction scores how badly a candidate solution realizes the desired
// region sizes. Lower is better; zero is a perfect diagram.
type LossFunction func(circles Solution, regions []Region) float64

// InitialLayout produces a starting placement for the refinement stage.
type InitialLayout func(regions []Region, opts *Options) (Solution, error)

// Refiner minimizes a scalar loss over a flattened (x, y, x, y, ...)
// coordinate vector, starting from initial.
type Refiner func(loss func([]float64) float64, initial []float64, opts *Options) optimize.Result

// Options contains all configuration for layout computation. The zero value
// is usable: ValidateAndSetDefaults fills in every field.
type Options struct {
	// MaxIterations bounds the refinement optimizer. Default 500.
	MaxIterations int

	// Restarts is the number of random restarts for constrained MDS
	// placement. Default 10.
	Restarts int

	// Seed seeds the random initial positions of constrained MDS placement.
	// Default 42.
	Seed uint64

	// LossFunction scores candidate solutions. Default SquaredLoss.
	LossFunction LossFunction

	// InitialLayout produces the starting placement. Default BestInitialLayout.
	InitialLayout InitialLayout

	// Refiner minimizes the loss from the starting placement.
	// Default RefineConjugateGradient.
	Refiner Refiner

	// Logger receives debug-level stage timing and warning-level layout
	// diagnostics. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults fills unset fields with defaults. It is
// idempotent: calling it multiple times has the same effect as calling it
// once.
//
// Every field has a usable default, so the returned error is nil for all
// inputs. Entry points without an error return of their own rely on this;
// any future validation that can fail must come with a new error code and
// a path to surface it from those entry points.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Restarts == 0 {
		o.Restarts = DefaultRestarts
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.LossFunction == nil {
		o.LossFunction = SquaredLoss
	}
	if o.InitialLayout == nil {
		o.InitialLayout = BestInitialLayout
	}
	if o.Refiner == nil {
		o.Refiner = RefineConjugateGradient
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
