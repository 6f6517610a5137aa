// SPDX-License-Identifier: MIT

// Package matrix: equality across matrix implementations.
// Equality is a property of dimensions and components, not of the concrete
// type that produced them: a frozen view, a *Dense and any foreign Matrix
// implementation compare equal whenever their shapes and values match.

package matrix

import "github.com/chewxy/math32"

// Equal reports exact component-wise equality of a and b.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: compare the flat slices directly.
	if da, db, ok := densePair(a, b); ok {
		for i := range da.data {
			if da.data[i] != db.data[i] {
				return false
			}
		}
		return true
	}

	// Fallback: fixed i→j interface walk.
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports component-wise equality of a and b within eps:
// |a[i,j] - b[i,j]| ≤ eps everywhere. A negative eps is treated as its
// absolute value. Complexity: O(r*c).
func EqualApprox(a, b Matrix, eps float32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	eps = math32.Abs(eps)

	if da, db, ok := densePair(a, b); ok {
		for i := range da.data {
			if math32.Abs(da.data[i]-db.data[i]) > eps {
				return false
			}
		}
		return true
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if math32.Abs(av-bv) > eps {
				return false
			}
		}
	}

	return true
}

// densePair unwraps both operands to *Dense when possible (directly or
// through a frozen view), unlocking the flat comparison path.
func densePair(a, b Matrix) (*Dense, *Dense, bool) {
	da, okA := asDense(a)
	if !okA {
		return nil, nil, false
	}
	db, okB := asDense(b)
	if !okB {
		return nil, nil, false
	}

	return da, db, true
}

// asDense unwraps a Matrix to its backing *Dense without copying.
func asDense(m Matrix) (*Dense, bool) {
	switch t := m.(type) {
	case *Dense:
		return t, true
	case frozen:
		return t.d, true
	}

	return nil, false
}
