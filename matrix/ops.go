// SPDX-License-Identifier: MIT

// Package matrix: value-returning operation kernels.
// All kernels validate through the central validators, allocate exactly one
// result Dense, never mutate their operands, and keep deterministic loop
// orders. The *Dense fast paths run SIMD passes over the flat row-major
// slices; the interface fallbacks use At/Set in fixed i→j order.

package matrix

import (
	"fmt"

	"github.com/viterin/vek/vek32"
)

// addSub computes component-wise out = a + sign*b for sign ∈ {+1, -1}.
// Shared implementation of Add and Sub: one validation, one allocation,
// one fast path.
func addSub(a, b Matrix, sign float32, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := denseOf(a)

	// Fast path: both operands dense → single SIMD pass over flat storage.
	if db, ok := b.(*Dense); ok {
		if sign > 0 {
			vek32.Add_Inplace(res.data, db.data)
		} else {
			vek32.Sub_Inplace(res.data, db.data)
		}
		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			bv, err := b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*res.c+j] += sign * bv
		}
	}

	return res, nil
}

// Add returns the component-wise sum C = A + B as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns the component-wise difference C = A - B as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose components are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float32) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := denseOf(m)
	vek32.MulNumber_Inplace(res.data, alpha)

	return res, nil
}

// Hadamard returns the component-wise product a ⊙ b as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := denseOf(a)

	// Fast path: flat SIMD multiply.
	if db, ok := b.(*Dense); ok {
		vek32.Mul_Inplace(res.data, db.data)
		return res, nil
	}

	// Fallback: fixed i→j interface loop.
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			bv, err := b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*res.c+j] *= bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// The inner dimensions must agree (a.Cols == b.Rows); a mismatch fails with
// ErrDimensionMismatch, never silently truncates.
// The dense fast path runs i→k→j with row-major strides and skips zero
// A[i,k]; the fallback uses i→j→k over the interface.
// Complexity: O(r*n*c). Space: O(r*c) for C.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path for two Dense operands: flat row-major accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowA := da.data[i*aCols : (i+1)*aCols]
				rowR := res.data[i*bCols : (i+1)*bCols]
				for k := 0; k < aCols; k++ {
					av := rowA[k]
					if av == 0 {
						continue // skip zero contributions
					}
					rowB := db.data[k*bCols : (k+1)*bCols]
					for j := 0; j < bCols; j++ {
						rowR[j] += av * rowB[j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			var sum float32
			for k := 0; k < aCols; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: flat index mapping data[i*c+j] → res.data[j*r+i].
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x with len(x) == m.Cols().
// The dense fast path is one SIMD dot product per row.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c). Space: O(r) for y.
func MatVec(m Matrix, x []float32) ([]float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float32, rows)

	// Fast path: one flat dot product per row.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			y[i] = vek32.Dot(d.data[i*cols:(i+1)*cols], x)
		}
		return y, nil
	}

	// Fallback: interface-based dot products via At.
	for i := 0; i < rows; i++ {
		var sum float32
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Trace(m Matrix) (float32, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var sum float32
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i) // index is valid by construction
		sum += v
	}

	return sum, nil
}
