// SPDX-License-Identifier: MIT

// Package matrix: derived operations built on the reduction engine.
// Determinant, inverse and rank never mutate their input: whenever the
// cheap shape predicates rule out a closed-form or fast path, the engine
// runs on a freshly-owned clone.

package matrix

import "github.com/chewxy/math32"

// Determinant returns the determinant of the square matrix m using exact
// zero tests during elimination. See DeterminantEps for the tolerance knob.
// Errors: ErrNilMatrix, ErrNonSquare.
func Determinant(m Matrix) (float32, error) {
	return DeterminantEps(m, Exact)
}

// DeterminantEps returns the determinant of the square matrix m.
//
// Stage 1 (Validate): non-nil, square, valid eps.
// Stage 2 (Dispatch): sizes 1–3 use closed-form cofactor expansion; a matrix
// already triangular (within eps) yields the product of its diagonal;
// otherwise a clone is forward-eliminated and the result is the
// sign-adjusted product of the resulting diagonal.
//
// eps only steers the internal zero-pivot decisions; the result itself is
// the exact float32 arithmetic outcome.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon. Complexity: O(n^3).
func DeterminantEps(m Matrix, eps float32) (float32, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.Rows()
	switch n {
	case 1:
		v, _ := m.At(0, 0)
		return v, nil
	case 2:
		a, _ := m.At(0, 0)
		b, _ := m.At(0, 1)
		c, _ := m.At(1, 0)
		d, _ := m.At(1, 1)
		return a*d - b*c, nil
	case 3:
		// Cofactor expansion along the first row.
		a, _ := m.At(0, 0)
		b, _ := m.At(0, 1)
		c, _ := m.At(0, 2)
		d, _ := m.At(1, 0)
		e, _ := m.At(1, 1)
		f, _ := m.At(1, 2)
		g, _ := m.At(2, 0)
		h, _ := m.At(2, 1)
		i, _ := m.At(2, 2)
		return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g), nil
	}

	// Triangular fast path: the determinant is the diagonal product.
	if tri, _ := IsTriangular(m, eps); tri {
		return diagonalProduct(m, n), nil
	}

	// General case: eliminate a clone, apply the permutation sign.
	work := denseOf(m)
	sign := forwardEliminate(work, eps, nil)

	prod := diagonalProduct(work, n)
	if sign < 0 {
		prod = -prod
	}

	return prod, nil
}

// diagonalProduct multiplies the diagonal of a square matrix; bounds were
// validated by the caller.
func diagonalProduct(m Matrix, n int) float32 {
	prod := float32(1)
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		prod *= v
	}

	return prod
}

// Inverse returns the inverse of the square matrix m using exact zero tests,
// or ok == false when m is singular. Singularity is an expected outcome, not
// an error. See InverseEps for the tolerance knob.
// Errors: ErrNilMatrix, ErrNonSquare.
func Inverse(m Matrix) (Matrix, bool, error) {
	return InverseEps(m, Exact)
}

// InverseEps returns the inverse of the square matrix m, or ok == false when
// m is singular within eps.
//
// Stage 1 (Validate): non-nil, square, valid eps.
// Stage 2 (Reduce): size 1 is the reciprocal; otherwise an identity
// companion is attached to a clone of m and both are driven through the
// forward and backward elimination passes. After reduction the bottom-right
// diagonal entry of the reduced matrix decides: |entry| ≤ eps means singular
// (nil, false, nil); otherwise the companion now holds the inverse.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon. Complexity: O(n^3).
func InverseEps(m Matrix, eps float32) (Matrix, bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	if n == 1 {
		v, _ := m.At(0, 0)
		if nearZero(v, eps) {
			return nil, false, nil
		}
		inv, _ := NewDenseRef(1, 1, []float32{1 / v})
		return inv, true, nil
	}

	// Reduce a clone with an identity companion attached; the companion
	// accumulates the row operations that turn m into the identity.
	work := denseOf(m)
	companion, _ := NewIdentity(n) // n >= 2, construction cannot fail
	if err := ReducedEchelonInPlace(work, eps, companion); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	// A singular matrix cannot reach a full diagonal: its reduced form has a
	// (near-)zero bottom-right entry.
	if math32.Abs(work.data[(n-1)*n+(n-1)]) <= eps {
		return nil, false, nil
	}

	return companion, true, nil
}

// Rank returns the number of linearly independent rows of m: the count of
// non-zero rows of its echelon form. Valid for any shape.
// Errors: ErrNilMatrix, ErrBadEpsilon. Complexity: O(r^2*c).
func Rank(m Matrix, eps float32) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	work := denseOf(m)
	forwardEliminate(work, eps, nil)

	rank := 0
	for i := 0; i < work.r; i++ {
		row := work.data[i*work.c : (i+1)*work.c]
		for _, v := range row {
			if !nearZero(v, eps) {
				rank++
				break
			}
		}
	}

	return rank, nil
}

// IsInvertible reports whether the square matrix m has full rank within eps,
// without computing the inverse itself.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadEpsilon. Complexity: O(n^3).
func IsInvertible(m Matrix, eps float32) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opInverse, err)
	}
	if err := ValidateEpsilon(eps); err != nil {
		return false, matrixErrorf(opInverse, err)
	}

	// After forward elimination a non-singular square matrix has a fully
	// non-zero diagonal; checking the bottom-right entry suffices.
	work := denseOf(m)
	forwardEliminate(work, eps, nil)
	n := work.r

	return !nearZero(work.data[(n-1)*n+(n-1)], eps), nil
}
