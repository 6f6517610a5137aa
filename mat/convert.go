// SPDX-License-Identifier: MIT

// Package mat: conversions to and from the generic matrix types.
// FromMatrixN copies the overlapping region of an arbitrary matrix into a
// fixed-size value, truncating extra rows and columns and zero-padding
// missing ones. DenseN goes the other way; round trips over matching
// dimensions preserve every component bit-exactly.

package mat

import "github.com/Rc-Cookie/math-sub001/matrix"

// FromMatrix2 extracts the top-left 2x2 block of m, zero-padding when m is
// smaller. Returns ErrNilMatrix for a nil input.
func FromMatrix2(m matrix.Matrix) (Mat2, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Mat2{}, err
	}
	var f [4]float32
	copyBlock(m, 2, func(i, j int, v float32) { f[i*2+j] = v })
	return Mat2{A: f[0], B: f[1], C: f[2], D: f[3]}, nil
}

// FromMatrix3 extracts the top-left 3x3 block of m, zero-padding when m is
// smaller. Returns ErrNilMatrix for a nil input.
func FromMatrix3(m matrix.Matrix) (Mat3, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Mat3{}, err
	}
	var out Mat3
	copyBlock(m, 3, func(i, j int, v float32) { out[i*3+j] = v })
	return out, nil
}

// FromMatrix4 extracts the top-left 4x4 block of m, zero-padding when m is
// smaller. Returns ErrNilMatrix for a nil input.
func FromMatrix4(m matrix.Matrix) (Mat4, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Mat4{}, err
	}
	var out Mat4
	copyBlock(m, 4, func(i, j int, v float32) { out[i*4+j] = v })
	return out, nil
}

// copyBlock walks the overlap of m and an n x n target, handing each
// component to set. Indices stay inside m, so At cannot fail.
func copyBlock(m matrix.Matrix, n int, set func(i, j int, v float32)) {
	rows := min(n, m.Rows())
	cols := min(n, m.Cols())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			set(i, j, v)
		}
	}
}

// Dense returns m as a generic 2x2 dense matrix.
func (m Mat2) Dense() *matrix.Dense {
	d, _ := matrix.NewDenseFromFlat(2, 2, []float32{m.A, m.B, m.C, m.D}, 0)
	return d
}

// Dense returns m as a generic 3x3 dense matrix.
func (m Mat3) Dense() *matrix.Dense {
	d, _ := matrix.NewDenseFromFlat(3, 3, m[:], 0)
	return d
}

// Dense returns m as a generic 4x4 dense matrix.
func (m Mat4) Dense() *matrix.Dense {
	d, _ := matrix.NewDenseFromFlat(4, 4, m[:], 0)
	return d
}
