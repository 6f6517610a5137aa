// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/chewxy/math32"

	"github.com/Rc-Cookie/math-sub001/vec"
)

// Mat3 is a 3x3 float32 matrix stored as a flat row-major array:
// entry (i, j) lives at index i*3+j. Lettered fields stop scanning well at
// this size, so the larger types use the flat layout; it also maps onto the
// generic row-major storage without reshuffling.
type Mat3 [9]float32

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the entry at row i, column j. Indices are not range-checked;
// the type's fixed size makes the contract obvious at the call site.
func (m Mat3) At(i, j int) float32 {
	return m[i*3+j]
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transposed returns the transpose of m.
func (m Mat3) Transposed() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m (cofactor expansion along the first row).
func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float32 {
	return m[0] + m[4] + m[8]
}

// Inverse returns the inverse of m via the adjugate, or (zero, false) when
// the determinant is within eps of zero.
func (m Mat3) Inverse(eps float32) (Mat3, bool) {
	det := m.Det()
	if math32.Abs(det) <= eps {
		return Mat3{}, false
	}
	inv := 1 / det
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, true
}

// ApproxEq reports whether every entry of m is within eps of n.
func (m Mat3) ApproxEq(n Mat3, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}
