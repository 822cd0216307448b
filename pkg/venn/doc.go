// Package venn computes area-proportional Venn and Euler diagram layouts.
//
// # Overview
//
// Given a list of [Region] values describing the desired area of each set
// and each set intersection, [ComputeLayout] places one circle per set so
// that the realized region areas approximate the requested ones as closely
// as possible. More than three sets generally cannot be drawn exactly with
// circles, so the solver minimizes error rather than guaranteeing zero
// error.
//
// The pipeline has three stages, each independently usable:
//
//  1. [ComputeLayout]: radii are fixed from the singleton sizes, circles
//     are placed by a greedy pairwise-distance heuristic (or constrained
//     MDS for larger inputs), and the placement is refined by minimizing an
//     area-error loss with a conjugate-gradient optimizer.
//  2. [NormalizeAndScale]: the raw solution is rotated and reflected into a
//     canonical orientation, then scaled and translated to fit a
//     width×height frame with padding. This affects presentation only,
//     never layout error.
//  3. [ComputeLabelAnchors]: for each region, the interior point with the
//     best margin to all region boundaries is found by sampling plus
//     Nelder–Mead refinement, with documented fallbacks for degenerate
//     regions.
//
// Rendering (drawing circles and labels, transitions, colors) is a
// consumer concern: the outputs here are a [Solution] mapping set
// identifiers to circles and a map from region key to anchor point.
//
// # Usage
//
//	regions := []venn.Region{
//	    {Sets: []string{"A"}, Size: 12},
//	    {Sets: []string{"B"}, Size: 12},
//	    {Sets: []string{"A", "B"}, Size: 2},
//	}
//	solution, err := venn.ComputeLayout(regions, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scaled := venn.NormalizeAndScale(solution, 600, 350, 15, venn.DefaultOrientation, nil)
//	anchors := venn.ComputeLabelAnchors(scaled, regions, nil)
//
// # Concurrency
//
// Every computation is a pure, synchronous function of its inputs. All
// working buffers are local to one call, so independent layouts may be
// computed concurrently from multiple goroutines.
package venn
