// SPDX-License-Identifier: MIT

// Package matrix provides dense single-precision (float32) linear algebra
// primitives for geometry and physics-adjacent code: a row-major MxN storage
// type with read-only and mutable views, cheap shape-classification
// predicates, an in-place Gaussian row-reduction engine (echelon and reduced
// echelon form with partial pivoting and companion-matrix tracking), and the
// derived operations built on top of it (determinant, inverse, rank).
//
// Design principles:
//
//   - Fail-fast validation: every operation validates shape/nil/index
//     contracts up front and returns a package sentinel error (errors.Is
//     matchable); nothing silently truncates or pads.
//   - Value semantics at the surface: derived operations (ToEchelon,
//     ToReducedEchelon, Determinant, Inverse) clone the receiver before
//     running the in-place algorithms, so concurrent derived calls against a
//     shared matrix are safe. Only the explicit *Dense in-place API mutates
//     caller-owned storage, and that API performs no synchronization.
//   - Explicit tolerances: every zero-test takes an epsilon parameter; the
//     package never applies a hidden global tolerance. Exact (0) is the
//     default everywhere a default exists.
//   - Deterministic kernels: fixed loop orders, no data-dependent traversal,
//     reproducible results across runs and platforms.
//
// Singularity is not an error: Inverse reports a singular input through its
// ok result, because a non-invertible matrix is an expected outcome the
// caller must check for, not a contract violation.
package matrix
