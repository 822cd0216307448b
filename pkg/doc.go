// Package pkg provides the core libraries for area-proportional Venn and
// Euler diagram layout.
//
// # Overview
//
// Given desired sizes for sets and their intersections, the libraries here
// compute circle positions and radii whose pairwise and higher-order
// intersection areas approximate those sizes. The pkg directory is organized
// into three main areas:
//
//  1. [geometry] - Circle-intersection geometry (overlap areas, arc
//     decomposition, boundary-path encoding)
//  2. [optimize] - Numerical optimizers (bisection, Nelder–Mead simplex,
//     Polak–Ribière conjugate gradients) and shared vector helpers
//  3. [venn] - The layout solver, solution normalizer/scaler, and label
//     anchor locator built on the two above
//
// Supporting packages: [errors] (structured error codes) and
// [observability] (layout/label lifecycle hooks).
//
// # Architecture
//
// The typical data flow through a layout:
//
//	[]venn.Region (desired set and intersection sizes)
//	         ↓
//	    venn.ComputeLayout (greedy or MDS placement, then refinement)
//	         ↓
//	    venn.NormalizeAndScale (canonical orientation, pixel frame)
//	         ↓
//	    venn.ComputeLabelAnchors (one anchor point per region)
//
// # Quick Start
//
// Lay out two overlapping sets and fit them to a 600x400 frame:
//
//	import (
//	    "math"
//	    "github.com/vennlab/venn/pkg/venn"
//	)
//
//	regions := []venn.Region{
//	    {Sets: []string{"A"}, Size: 10},
//	    {Sets: []string{"B"}, Size: 10},
//	    {Sets: []string{"A", "B"}, Size: 2},
//	}
//
//	solution, err := venn.ComputeLayout(regions, nil)
//	if err != nil {
//	    // handle invalid input
//	}
//	scaled := venn.NormalizeAndScale(solution, 600, 400, 20, math.Pi/2, nil)
//	anchors := venn.ComputeLabelAnchors(scaled, regions, nil)
//
// All entry points are deterministic: the same input always produces the
// same diagram.
package pkg
