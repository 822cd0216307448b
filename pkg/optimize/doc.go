// Package optimize provides the generic numerical minimizers used by the
// venn layout solver and label placement.
//
// # Overview
//
// Three algorithms are provided, each parametrized by an arbitrary
// objective:
//
//   - [Bisect]: a bracketed 1-D root finder.
//   - [NelderMead]: a derivative-free simplex minimizer over an
//     n-dimensional coordinate vector.
//   - [ConjugateGradient]: a Polak–Ribière conjugate-gradient minimizer
//     with a Wolfe-condition line search, for objectives that can also
//     report their gradient.
//
// Shared BLAS-style vector helpers ([Dot], [Norm2], [Scale], [WeightedSum],
// [Zeros]) round out the package.
//
// # Convergence
//
// The minimizers never fail on non-convergence: when the iteration budget
// runs out they return the best point found so far. Convergence is a
// quality property, not a correctness one, and callers tune the budgets
// through the parameter structs. Zero-valued parameter fields are replaced
// by the documented defaults.
package optimize
