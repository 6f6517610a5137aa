// SPDX-License-Identifier: MIT

// Package vec: accelerated helpers over plain []float32 slices.
// These delegate to the vek SIMD kernels and carry the same length contract:
// mismatched or empty inputs yield 0 rather than panicking, so callers can
// feed raw row data straight from matrix storage.

package vec

import "github.com/viterin/vek/vek32"

// Dot32 computes the dot product of two float32 slices.
// Returns 0 if the slices are empty or differ in length.
func Dot32(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return vek32.Dot(a, b)
}

// Norm32 computes the Euclidean (L2) norm of a float32 slice.
// Returns 0 for an empty slice.
func Norm32(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return vek32.Norm(v)
}

// Dist32 computes the Euclidean distance between two float32 slices.
// Returns 0 if the slices are empty or differ in length.
func Dist32(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return vek32.Distance(a, b)
}

// Normalize32 scales v to unit length in place. A zero-length slice and the
// zero vector are left unchanged.
func Normalize32(v []float32) {
	n := Norm32(v)
	if n == 0 {
		return
	}
	vek32.DivNumber_Inplace(v, n)
}
