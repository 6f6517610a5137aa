// SPDX-License-Identifier: MIT

// Package matrix: canonical validation helpers.
// A single source of truth for nil/shape/square/compatibility checks.
// Validators return plain sentinel errors (no wrapping) so call sites can
// wrap uniformly with their operation tag; all checks are pure, O(1) and
// allocation-free.

package matrix

import (
	"fmt"

	"github.com/chewxy/math32"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so errors.Is/As keep matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have identical dimensions.
// Assumes both are non-nil (compose with ValidateNotNil as needed).
// Returns ErrDimensionMismatch on any difference.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateBinarySameShape composes NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Returns ErrNonSquare otherwise; assumes m is non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateSquareNonNil composes NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateMulCompatible ensures a.Cols == b.Rows for multiplication,
// inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with exactly length n.
func ValidateVecLen(x []float32, n int) error {
	if x == nil {
		return ErrNilMatrix
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateEpsilon enforces the numeric policy on tolerances: finite and
// non-negative. NaN, ±Inf and negative values fail with ErrBadEpsilon.
func ValidateEpsilon(eps float32) error {
	if math32.IsNaN(eps) || math32.IsInf(eps, 0) || eps < 0 {
		return ErrBadEpsilon
	}

	return nil
}

// validateCompanions ensures every companion matrix is non-nil and carries
// the same row count as the matrix under reduction; the identical sequence of
// row operations only makes sense over matching row spaces.
func validateCompanions(d *Dense, companions []*Dense) error {
	for _, cm := range companions {
		if cm == nil {
			return ErrNilMatrix
		}
		if cm.r != d.r {
			return ErrDimensionMismatch
		}
	}

	return nil
}
