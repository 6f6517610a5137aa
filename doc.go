// Package linal is a single-precision linear algebra toolkit: dense
// matrices with a generic row-reduction engine, plus small fixed-size
// vector and matrix types for closed-form work.
//
// 🚀 What is linal?
//
//	A float32-first library that brings together:
//		• Dense storage: generic MxN matrices with read-only and mutable views
//		• Reduction engine: echelon & reduced-echelon forms with partial
//		  pivoting, companion mirroring and permutation-sign tracking
//		• Derived operations: determinant, inverse, rank, invertibility
//		• Shape predicates: diagonal, triangular, (reduced) echelon
//		• Fixed-size types: Vec2/3/4 and Mat2/3/4 with closed-form formulas
//		• Geometry: axis-aligned rectangles and ray-box slab tests
//
// ✨ Why choose linal?
//
//   - Explicit tolerances – every zero test takes an eps parameter, nothing
//     reads a hidden global
//   - Value semantics – derived operations clone before reducing; mutation
//     always goes through the explicit Mutable view
//   - Honest failure modes – sentinel errors for contract violations,
//     (value, ok) results for singular matrices
//   - SIMD-backed kernels – flat row-major storage feeds vek slice
//     operations on the hot paths
//
// Everything is organized under four subpackages:
//
//	matrix/ — generic MxN dense matrices, predicates, the reduction engine
//	          and the derived operations built on it
//	mat/    — fixed-size Mat2/Mat3/Mat4 with cofactor determinants and
//	          adjugate inverses, plus conversions to and from matrix
//	vec/    — fixed-size Vec2/Vec3/Vec4 value types and []float32 helpers
//	geom/   — Rect and Ray over vec
//
//	go get github.com/Rc-Cookie/math-sub001
package linal
