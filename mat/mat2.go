// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/chewxy/math32"

	"github.com/Rc-Cookie/math-sub001/vec"
)

// Mat2 is a 2x2 float32 matrix in row-major order:
//
//	| A B |
//	| C D |
type Mat2 struct {
	A, B float32
	C, D float32
}

// Ident2 returns the 2x2 identity matrix.
func Ident2() Mat2 {
	return Mat2{A: 1, D: 1}
}

// Mul returns the matrix product m * n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Transposed returns the transpose of m.
func (m Mat2) Transposed() Mat2 {
	return Mat2{A: m.A, B: m.C, C: m.B, D: m.D}
}

// Det returns the determinant of m.
func (m Mat2) Det() float32 {
	return m.A*m.D - m.B*m.C
}

// Trace returns the sum of the diagonal entries.
func (m Mat2) Trace() float32 {
	return m.A + m.D
}

// Inverse returns the inverse of m, or (zero, false) when the determinant
// is within eps of zero.
func (m Mat2) Inverse(eps float32) (Mat2, bool) {
	det := m.Det()
	if math32.Abs(det) <= eps {
		return Mat2{}, false
	}
	inv := 1 / det
	return Mat2{
		A: m.D * inv, B: -m.B * inv,
		C: -m.C * inv, D: m.A * inv,
	}, true
}

// ApproxEq reports whether every entry of m is within eps of n.
func (m Mat2) ApproxEq(n Mat2, eps float32) bool {
	return math32.Abs(m.A-n.A) <= eps && math32.Abs(m.B-n.B) <= eps &&
		math32.Abs(m.C-n.C) <= eps && math32.Abs(m.D-n.D) <= eps
}
