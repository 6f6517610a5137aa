// SPDX-License-Identifier: MIT

// Package matrix: public view types and numeric-policy constants.
// This file declares the read-only Matrix interface, its Mutable extension,
// and the tolerance constants shared by predicates and the reduction engine.

package matrix

// Numeric policy. Tolerances are always explicit parameters; these constants
// are the documented defaults callers may pass, never values the package
// applies on its own.
const (
	// Exact requests exact zero tests (eps == 0). This is the default of
	// every operation that owns an internal tolerance (Determinant, Inverse).
	Exact float32 = 0

	// DefaultEpsilon is a practical tolerance at float32 scale for callers
	// that want "close enough to zero" semantics without picking their own.
	DefaultEpsilon float32 = 1e-5
)

// Operation name constants for unified error wrapping; no magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opScale          = "Scale"
	opHadamard       = "Hadamard"
	opMul            = "Mul"
	opTranspose      = "Transpose"
	opMatVec         = "MatVec"
	opTrace          = "Trace"
	opDeterminant    = "Determinant"
	opInverse        = "Inverse"
	opRank           = "Rank"
	opEchelon        = "ToEchelon"
	opReducedEchelon = "ToReducedEchelon"
)

// Matrix is the read-only view over an MxN grid of float32 values.
// It exposes dimensions, component access and cloning; every derived
// operation in this package accepts a Matrix and never mutates it.
//
// Complexity notes: all methods are O(1) except Row/Col (O(N)/O(M) copies)
// and Clone (O(M*N)).
type Matrix interface {
	// Rows returns the number of rows M.
	Rows() int

	// Cols returns the number of columns N.
	Cols() int

	// At retrieves the component at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float32, error)

	// Row returns a copy of row i. Returns ErrOutOfRange on a bad index.
	Row(i int) ([]float32, error)

	// Col returns a copy of column j. Returns ErrOutOfRange on a bad index.
	Col(j int) ([]float32, error)

	// Clone returns a deep copy, independent of the original.
	Clone() Matrix
}

// Mutable is a Matrix whose components can be altered in place.
// It is the explicit mutable view of the storage model: holding a Mutable is
// the ownership token required for any in-place operation. Concurrent use of
// the same Mutable from multiple goroutines must be serialized by the caller.
type Mutable interface {
	Matrix

	// Set assigns value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float32) error

	// SwapRows exchanges rows i and k in place.
	SwapRows(i, k int) error

	// SwapCols exchanges columns j and l in place.
	SwapCols(j, l int) error
}
