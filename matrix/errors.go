// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid: non-positive
	// dimensions, a zero-length row or column array at construction, ragged
	// row arrays, or a flat buffer too short for the requested dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or flat offset) is
	// outside valid bounds. Public indexers (At/Set/Row/Col/Swap*) MUST
	// return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub/Hadamard with different shapes, Mul where
	// a.Cols != b.Rows, MatVec with a wrong vector length, or a companion
	// matrix whose row count differs from the matrix under reduction.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was not (Determinant, Inverse, Trace, IsDiagonal, IsTriangular, ...).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// passed where a concrete matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadEpsilon indicates a NaN, infinite or negative tolerance where a
	// finite non-negative epsilon is required by the numeric policy.
	ErrBadEpsilon = errors.New("matrix: invalid epsilon")
)
