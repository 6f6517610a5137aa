// SPDX-License-Identifier: MIT

// Package matrix: shape-classification predicates.
// Cheap O(M·N) scans used both as public queries and as internal fast paths
// (derived operations skip reduction work when a matrix is already
// triangular/echelon). Every predicate is epsilon-parameterized; pass Exact
// for strict zero tests. None of them allocates.

package matrix

import "github.com/chewxy/math32"

// IsSquare reports whether m has as many rows as columns.
// A nil matrix is not square. Complexity: O(1).
func IsSquare(m Matrix) bool {
	return m != nil && m.Rows() == m.Cols()
}

// nearZero is the single zero-test used by predicates and the reduction
// engine: |v| ≤ eps.
func nearZero(v, eps float32) bool {
	return math32.Abs(v) <= eps
}

// IsDiagonal reports whether every off-diagonal component of the square
// matrix m is within eps of zero.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon.
// Complexity: O(n^2).
func IsDiagonal(m Matrix, eps float32) (bool, error) {
	if err := predicateContract(m, eps, true); err != nil {
		return false, err
	}

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ := m.At(i, j) // bounds are valid after the contract check
			if !nearZero(v, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUpperTriangular reports whether every component strictly below the
// diagonal of the square matrix m is within eps of zero.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon.
// Complexity: O(n^2) worst case (lower triangle only).
func IsUpperTriangular(m Matrix, eps float32) (bool, error) {
	if err := predicateContract(m, eps, true); err != nil {
		return false, err
	}

	n := m.Rows()
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v, _ := m.At(i, j)
			if !nearZero(v, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsLowerTriangular reports whether every component strictly above the
// diagonal of the square matrix m is within eps of zero.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon.
// Complexity: O(n^2) worst case (upper triangle only).
func IsLowerTriangular(m Matrix, eps float32) (bool, error) {
	if err := predicateContract(m, eps, true); err != nil {
		return false, err
	}

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, _ := m.At(i, j)
			if !nearZero(v, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsTriangular reports whether m is upper or lower triangular within eps.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon.
func IsTriangular(m Matrix, eps float32) (bool, error) {
	up, err := IsUpperTriangular(m, eps)
	if err != nil {
		return false, err
	}
	if up {
		return true, nil
	}

	return IsLowerTriangular(m, eps)
}

// IsEchelon reports whether m is in row-echelon form within eps: scanning
// rows top to bottom, each non-zero row's leading column is strictly to the
// right of the previous non-zero row's, and all-zero rows trail every
// non-zero row. Valid for any shape.
// Errors: ErrNilMatrix, ErrBadEpsilon.
// Complexity: O(r*c).
func IsEchelon(m Matrix, eps float32) (bool, error) {
	if err := predicateContract(m, eps, false); err != nil {
		return false, err
	}

	rows, cols := m.Rows(), m.Cols()
	// lead is the leading column of the previous non-zero row; sawZeroRow is
	// set once an all-zero row has been seen.
	lead := -1
	sawZeroRow := false

	for i := 0; i < rows; i++ {
		// Locate this row's leading (first non-zero) column.
		rowLead := -1
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			if !nearZero(v, eps) {
				rowLead = j
				break
			}
		}

		if rowLead == -1 {
			// All-zero rows may only appear at the bottom.
			sawZeroRow = true
			continue
		}
		if sawZeroRow {
			// A non-zero row below an all-zero row breaks echelon form.
			return false, nil
		}
		if rowLead <= lead {
			// Leading columns must strictly increase row to row.
			return false, nil
		}
		lead = rowLead
	}

	return true, nil
}

// IsReducedEchelon reports whether m is in reduced row-echelon form within
// eps: echelon, every pivot equals 1 within eps, and every other component
// in a pivot's column (across all rows, not just below) is within eps of
// zero. Valid for any shape.
// Errors: ErrNilMatrix, ErrBadEpsilon.
// Complexity: O(r*c) for the echelon scan plus O(r) per pivot column.
func IsReducedEchelon(m Matrix, eps float32) (bool, error) {
	ech, err := IsEchelon(m, eps)
	if err != nil {
		return false, err
	}
	if !ech {
		return false, nil
	}

	return reducedEchelonScan(m, eps), nil
}

// reducedEchelonScan checks the pivot conditions of reduced echelon form on
// a matrix already known to be echelon: unit pivots and clean pivot columns.
func reducedEchelonScan(m Matrix, eps float32) bool {
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		// Find the pivot of row i.
		lead := -1
		var pivot float32
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			if !nearZero(v, eps) {
				lead, pivot = j, v
				break
			}
		}
		if lead == -1 {
			continue // all-zero row carries no pivot condition
		}
		// Pivot must be 1 within eps.
		if !nearZero(pivot-1, eps) {
			return false
		}
		// Every other row must be (near-)zero in the pivot column.
		for k := 0; k < rows; k++ {
			if k == i {
				continue
			}
			v, _ := m.At(k, lead)
			if !nearZero(v, eps) {
				return false
			}
		}
	}

	return true
}

// predicateContract bundles the shared entry checks of the predicates:
// non-nil, valid epsilon and (optionally) squareness.
func predicateContract(m Matrix, eps float32, square bool) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateEpsilon(eps); err != nil {
		return err
	}
	if square {
		return ValidateSquare(m)
	}

	return nil
}
