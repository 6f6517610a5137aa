// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/chewxy/math32"

	"github.com/Rc-Cookie/math-sub001/vec"
)

// Mat4 is a 4x4 float32 matrix stored as a flat row-major array:
// entry (i, j) lives at index i*4+j.
type Mat4 [16]float32

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the entry at row i, column j. Indices are not range-checked.
func (m Mat4) At(i, j int) float32 {
	return m[i*4+j]
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[i*4]*n[j] + m[i*4+1]*n[4+j] +
				m[i*4+2]*n[8+j] + m[i*4+3]*n[12+j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	return vec.Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transposed returns the transpose of m.
func (m Mat4) Transposed() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Trace returns the sum of the diagonal entries.
func (m Mat4) Trace() float32 {
	return m[0] + m[5] + m[10] + m[15]
}

// subFactors computes the twelve 2x2 sub-determinants shared by Det and
// Inverse (the Laplace expansion over complementary row pairs).
func (m Mat4) subFactors() (b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 float32) {
	b00 = m[0]*m[5] - m[1]*m[4]
	b01 = m[0]*m[6] - m[2]*m[4]
	b02 = m[0]*m[7] - m[3]*m[4]
	b03 = m[1]*m[6] - m[2]*m[5]
	b04 = m[1]*m[7] - m[3]*m[5]
	b05 = m[2]*m[7] - m[3]*m[6]
	b06 = m[8]*m[13] - m[9]*m[12]
	b07 = m[8]*m[14] - m[10]*m[12]
	b08 = m[8]*m[15] - m[11]*m[12]
	b09 = m[9]*m[14] - m[10]*m[13]
	b10 = m[9]*m[15] - m[11]*m[13]
	b11 = m[10]*m[15] - m[11]*m[14]
	return
}

// Det returns the determinant of m.
func (m Mat4) Det() float32 {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := m.subFactors()
	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse returns the inverse of m via the adjugate, or (zero, false) when
// the determinant is within eps of zero.
func (m Mat4) Inverse(eps float32) (Mat4, bool) {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := m.subFactors()

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if math32.Abs(det) <= eps {
		return Mat4{}, false
	}
	inv := 1 / det

	return Mat4{
		(m[5]*b11 - m[6]*b10 + m[7]*b09) * inv,
		(m[2]*b10 - m[1]*b11 - m[3]*b09) * inv,
		(m[13]*b05 - m[14]*b04 + m[15]*b03) * inv,
		(m[10]*b04 - m[9]*b05 - m[11]*b03) * inv,
		(m[6]*b08 - m[4]*b11 - m[7]*b07) * inv,
		(m[0]*b11 - m[2]*b08 + m[3]*b07) * inv,
		(m[14]*b02 - m[12]*b05 - m[15]*b01) * inv,
		(m[8]*b05 - m[10]*b02 + m[11]*b01) * inv,
		(m[4]*b10 - m[5]*b08 + m[7]*b06) * inv,
		(m[1]*b08 - m[0]*b10 - m[3]*b06) * inv,
		(m[12]*b04 - m[13]*b02 + m[15]*b00) * inv,
		(m[9]*b02 - m[8]*b04 - m[11]*b00) * inv,
		(m[5]*b07 - m[4]*b09 - m[6]*b06) * inv,
		(m[0]*b09 - m[1]*b07 + m[2]*b06) * inv,
		(m[13]*b01 - m[12]*b03 - m[14]*b00) * inv,
		(m[8]*b03 - m[9]*b01 + m[10]*b00) * inv,
	}, true
}

// ApproxEq reports whether every entry of m is within eps of n.
func (m Mat4) ApproxEq(n Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}
