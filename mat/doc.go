// SPDX-License-Identifier: MIT

// Package mat provides fixed-size 2x2, 3x3 and 4x4 float32 matrices with
// closed-form operations: multiplication, transpose, trace, cofactor
// determinants and adjugate inverses.
//
// The types are plain row-major value types. Unlike the generic matrix
// package there is no elimination engine here: every operation is a direct
// formula, singularity is reported as (zero, false), and nothing allocates.
// Conversions to and from the generic matrix.Matrix live in convert.go.
package mat
