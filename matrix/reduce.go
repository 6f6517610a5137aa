// SPDX-License-Identifier: MIT

// Package matrix: the row-reduction engine.
// In-place transformation to row-echelon and reduced row-echelon form with
// partial pivoting, zero-row relegation and permutation-sign bookkeeping.
// Every row operation can be mirrored onto any number of companion matrices
// with matching row count: the forward and backward passes are parameterized
// over the companion set instead of being duplicated for the "with
// transform" and "without transform" cases. An identity companion threaded
// through both passes yields the inverse (see derived.go).

package matrix

import "github.com/viterin/vek/vek32"

// EchelonInPlace transforms d into row-echelon form in place and applies the
// identical sequence of row swaps and row subtractions to every companion.
// It returns the sign (+1 or -1) of the net row permutation, for determinant
// use.
//
// Stage 1 (Validate): non-nil receiver, finite non-negative eps, companions
// with matching row count.
// Stage 2 (Reduce): column-by-column forward elimination; see the package
// documentation for the zero-test policy.
//
// Pivot selection picks the row with the largest SIGNED entry in the current
// column, not the largest magnitude. Tie-breaking and the returned sign
// depend on this choice and are pinned by tests; callers wanting numerically
// stronger pivoting must pre-scale their data.
//
// Errors: ErrNilMatrix, ErrBadEpsilon, ErrDimensionMismatch (companion rows).
// Postcondition: IsEchelon(d, eps) holds. Complexity: O(r^2*c).
func EchelonInPlace(d *Dense, eps float32, companions ...*Dense) (int, error) {
	if d == nil {
		return 0, matrixErrorf(opEchelon, ErrNilMatrix)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return 0, matrixErrorf(opEchelon, err)
	}
	if err := validateCompanions(d, companions); err != nil {
		return 0, matrixErrorf(opEchelon, err)
	}

	return forwardEliminate(d, eps, companions), nil
}

// ReducedEchelonInPlace transforms d into reduced row-echelon form in place,
// mirroring every row operation onto the companions. If d is not already in
// echelon form (within eps) the forward pass of EchelonInPlace runs first;
// the upward pass then zeroes the pivot columns above each pivot and
// normalizes pivots to exactly 1.
//
// Errors: ErrNilMatrix, ErrBadEpsilon, ErrDimensionMismatch (companion rows).
// Postcondition: IsReducedEchelon(d, eps) holds. Complexity: O(r^2*c).
func ReducedEchelonInPlace(d *Dense, eps float32, companions ...*Dense) error {
	if d == nil {
		return matrixErrorf(opReducedEchelon, ErrNilMatrix)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return matrixErrorf(opReducedEchelon, err)
	}
	if err := validateCompanions(d, companions); err != nil {
		return matrixErrorf(opReducedEchelon, err)
	}

	// The O(r*c) predicate is cheap next to the O(r^2*c) forward pass; skip
	// the pass when the matrix already is echelon.
	if ech, _ := IsEchelon(d, eps); !ech {
		forwardEliminate(d, eps, companions)
	}
	backwardEliminate(d, eps, companions)

	return nil
}

// ToEchelon returns the row-echelon form of m as a new matrix; the receiver
// is never mutated (the engine runs on a clone). A matrix that already
// satisfies IsEchelon is cloned untouched.
// Errors: ErrNilMatrix, ErrBadEpsilon. Complexity: O(r^2*c).
func ToEchelon(m Matrix, eps float32) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}

	// Fast path: the predicate is an order cheaper than the reduction.
	if ech, _ := IsEchelon(m, eps); ech {
		return m.Clone(), nil
	}

	work := denseOf(m)
	forwardEliminate(work, eps, nil)

	return work, nil
}

// ToReducedEchelon returns the reduced row-echelon form of m as a new
// matrix; the receiver is never mutated. A matrix that already satisfies
// IsReducedEchelon is cloned untouched.
// Errors: ErrNilMatrix, ErrBadEpsilon. Complexity: O(r^2*c).
func ToReducedEchelon(m Matrix, eps float32) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReducedEchelon, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return nil, matrixErrorf(opReducedEchelon, err)
	}

	if red, _ := IsReducedEchelon(m, eps); red {
		return m.Clone(), nil
	}

	work := denseOf(m)
	if ech, _ := IsEchelon(work, eps); !ech {
		forwardEliminate(work, eps, nil)
	}
	backwardEliminate(work, eps, nil)

	return work, nil
}

// forwardEliminate is the forward (downward) elimination kernel. It walks
// the columns left to right, maintaining startRow as the first row not yet
// finalized, and returns the accumulated permutation sign.
//
// Per column:
//  1. Zero-row relegation: active rows whose entry in the column is within
//     eps of zero are swapped to the bottom of the active range and excluded
//     from this column; each physical swap flips the sign and is mirrored
//     onto every companion.
//  2. Partial pivoting: the remaining active row with the largest signed
//     entry is swapped into startRow (sign flip + mirroring again).
//  3. Elimination: each active row below the pivot has its column entry
//     zeroed directly and factor*pivotRow subtracted from its remaining
//     entries; companions receive the full-width subtraction.
//
// If no active row had a non-zero entry the cursor stays put; otherwise it
// advances. All loops are fixed-order and allocation-free.
func forwardEliminate(d *Dense, eps float32, comps []*Dense) int {
	sign := 1
	startRow := 0

	for col := 0; col < d.c && startRow < d.r; col++ {
		// Stage 1: relegate rows with a (near-)zero entry in this column to
		// the bottom of the active range [startRow, endRow).
		endRow := d.r
		for i := startRow; i < endRow; {
			if !nearZero(d.data[i*d.c+col], eps) {
				i++
				continue
			}
			endRow--
			if i != endRow {
				d.swapRows(i, endRow)
				for _, cm := range comps {
					cm.swapRows(i, endRow)
				}
				sign = -sign
				// Re-examine position i: an unseen row was swapped in.
			}
		}

		if endRow == startRow {
			// No active row is non-zero in this column; move right without
			// finalizing a pivot row.
			continue
		}

		// Stage 2: partial pivoting by largest signed value.
		best := startRow
		for i := startRow + 1; i < endRow; i++ {
			if d.data[i*d.c+col] > d.data[best*d.c+col] {
				best = i
			}
		}
		if best != startRow {
			d.swapRows(startRow, best)
			for _, cm := range comps {
				cm.swapRows(startRow, best)
			}
			sign = -sign
		}

		// Stage 3: eliminate the column below the pivot.
		pivotRow := d.data[startRow*d.c : (startRow+1)*d.c]
		pivot := pivotRow[col]
		for i := startRow + 1; i < endRow; i++ {
			row := d.data[i*d.c : (i+1)*d.c]
			factor := row[col] / pivot
			row[col] = 0 // zero the eliminated entry directly
			for j := col + 1; j < d.c; j++ {
				row[j] -= factor * pivotRow[j]
			}
			// Companions receive the subtraction across their full width.
			for _, cm := range comps {
				crow := cm.data[i*cm.c : (i+1)*cm.c]
				cpivot := cm.data[startRow*cm.c : (startRow+1)*cm.c]
				for j := range crow {
					crow[j] -= factor * cpivot[j]
				}
			}
		}

		startRow++
	}

	return sign
}

// backwardEliminate is the upward elimination kernel over a matrix already
// in echelon form. From the last row to the first it locates the row's
// pivot, zeroes the pivot column above it (mirroring the implied
// factor*pivotRow subtraction onto every companion), divides each
// companion's pivot row by the pivot value, and finally sets the pivot
// entry itself to exactly 1.
func backwardEliminate(d *Dense, eps float32, comps []*Dense) {
	for row := d.r - 1; row >= 0; row-- {
		rowSlice := d.data[row*d.c : (row+1)*d.c]

		// Locate the leading (pivot) column; all-zero rows are skipped.
		lead := -1
		for j := 0; j < d.c; j++ {
			if !nearZero(rowSlice[j], eps) {
				lead = j
				break
			}
		}
		if lead == -1 {
			continue
		}
		pivot := rowSlice[lead]

		// Zero the pivot column above; the companion rows receive the
		// subtraction the zeroing implies.
		for i := 0; i < row; i++ {
			above := d.data[i*d.c : (i+1)*d.c]
			factor := above[lead] / pivot
			above[lead] = 0
			for _, cm := range comps {
				crow := cm.data[i*cm.c : (i+1)*cm.c]
				cpivot := cm.data[row*cm.c : (row+1)*cm.c]
				for j := range crow {
					crow[j] -= factor * cpivot[j]
				}
			}
		}

		// Normalize: companion rows are divided by the pivot, then the
		// pivot entry becomes exactly 1.
		for _, cm := range comps {
			vek32.DivNumber_Inplace(cm.data[row*cm.c:(row+1)*cm.c], pivot)
		}
		rowSlice[lead] = 1
	}
}
