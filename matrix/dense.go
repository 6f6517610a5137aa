// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major float32 implementation of
// the Mutable interface, storing components in a flat slice for cache
// friendliness. Constructors cover the full ingestion surface: explicit
// dimensions, row arrays, column arrays, a flat buffer with offset, diagonal
// entries, identity, and an aliasing "reference" constructor.

package matrix

import (
	"fmt"
	"strings"

	"github.com/viterin/vek/vek32"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float32 values.
// r is rows, c is columns, and data holds r*c components in row-major order.
// A *Dense is the mutable view of the storage model; Freeze produces a
// read-only handle over an independent copy.
type Dense struct {
	r, c int       // number of rows and columns
	data []float32 // flat backing storage, length == r*c
}

// Compile-time interface conformance checks.
var (
	_ Matrix  = (*Dense)(nil)
	_ Mutable = (*Dense)(nil)
)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before allocating.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from explicit row arrays, copying them.
// Every row must be non-empty and all rows must share one length; a ragged
// or empty input fails with ErrBadShape before any allocation is visible.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float32) (*Dense, error) {
	// Reject an empty row set outright.
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	// All rows must match the first row's (non-zero) length.
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrBadShape
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrBadShape
		}
	}

	// Copy row by row into fresh flat storage.
	d := &Dense{r: len(rows), c: cols, data: make([]float32, len(rows)*cols)}
	for i, row := range rows {
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// NewDenseFromCols builds a Dense from explicit column arrays, copying them.
// Validation mirrors NewDenseFromRows; the transposed copy is O(r*c).
func NewDenseFromCols(cols [][]float32) (*Dense, error) {
	if len(cols) == 0 {
		return nil, ErrBadShape
	}
	rows := len(cols[0])
	if rows == 0 {
		return nil, ErrBadShape
	}
	for j := 1; j < len(cols); j++ {
		if len(cols[j]) != rows {
			return nil, ErrBadShape
		}
	}

	// Scatter each column into the row-major layout.
	d := &Dense{r: rows, c: len(cols), data: make([]float32, rows*len(cols))}
	for j, col := range cols {
		for i, v := range col {
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// NewDenseFromFlat builds an r×c Dense from a row-major flat buffer starting
// at offset, copying the r*c components. The source slice is not retained.
// Errors: ErrBadShape on non-positive dimensions or a buffer too short,
// ErrOutOfRange on a negative offset.
// Complexity: O(r*c).
func NewDenseFromFlat(rows, cols int, data []float32, offset int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if offset < 0 {
		return nil, ErrOutOfRange
	}
	// The buffer must cover offset + r*c components.
	if len(data)-offset < rows*cols {
		return nil, ErrBadShape
	}

	d := &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}
	copy(d.data, data[offset:offset+rows*cols])

	return d, nil
}

// NewDenseRef builds an r×c Dense that ALIASES the caller-supplied flat
// buffer without copying. Mutation of either the slice or the matrix is
// visible through the other; callers accept that sharing explicitly by
// choosing this constructor. The buffer length must equal r*c exactly.
// Complexity: O(1).
func NewDenseRef(rows, cols int, data []float32) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDiagonal builds an n×n matrix with the given entries on the diagonal
// and zeros elsewhere, where n = len(entries). An empty entry list fails
// with ErrBadShape. Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewDiagonal(entries ...float32) (*Dense, error) {
	n := len(entries)
	if n == 0 {
		return nil, ErrBadShape
	}

	d := &Dense{r: n, c: n, data: make([]float32, n*n)}
	for i, v := range entries {
		d.data[i*n+i] = v
	}

	return d, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	d := &Dense{r: n, c: n, data: make([]float32, n*n)}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers. Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square input.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= d.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*d.c + col, nil
}

// At retrieves the component at (row, col).
// Returns ErrOutOfRange on an invalid index. Complexity: O(1).
func (d *Dense) At(row, col int) (float32, error) {
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on an invalid index. Complexity: O(1).
func (d *Dense) Set(row, col int, v float32) error {
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Row returns a copy of row i; the result does not alias the backing
// storage. Complexity: O(c).
func (d *Dense) Row(i int) ([]float32, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	out := make([]float32, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// Col returns a copy of column j. Complexity: O(r).
func (d *Dense) Col(j int) ([]float32, error) {
	if j < 0 || j >= d.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}

	out := make([]float32, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c+j]
	}

	return out, nil
}

// SwapRows exchanges rows i and k in place.
// Swapping a row with itself is a no-op. Complexity: O(c).
func (d *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= d.r || k < 0 || k >= d.r {
		return denseErrorf("SwapRows", i, k, ErrOutOfRange)
	}
	d.swapRows(i, k)

	return nil
}

// swapRows is the bounds-unchecked kernel shared with the reduction engine.
func (d *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	ri := d.data[i*d.c : (i+1)*d.c]
	rk := d.data[k*d.c : (k+1)*d.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// SwapCols exchanges columns j and l in place. Complexity: O(r).
func (d *Dense) SwapCols(j, l int) error {
	if j < 0 || j >= d.c || l < 0 || l >= d.c {
		return denseErrorf("SwapCols", j, l, ErrOutOfRange)
	}
	if j == l {
		return nil
	}
	for i := 0; i < d.r; i++ {
		base := i * d.c
		d.data[base+j], d.data[base+l] = d.data[base+l], d.data[base+j]
	}

	return nil
}

// AddInPlace adds other into the receiver component-wise.
// Shapes must match (ErrDimensionMismatch). The *Dense fast path runs a
// single SIMD pass over the flat slices. Complexity: O(r*c).
func (d *Dense) AddInPlace(other Matrix) error {
	if err := ValidateBinarySameShape(d, other); err != nil {
		return err
	}

	// Fast path: flat SIMD addition when the operand is also *Dense.
	if od, ok := other.(*Dense); ok {
		vek32.Add_Inplace(d.data, od.data)
		return nil
	}

	// Fallback: interface path with fixed i→j order.
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := other.At(i, j)
			if err != nil {
				return denseErrorf("AddInPlace", i, j, err)
			}
			d.data[i*d.c+j] += v
		}
	}

	return nil
}

// ScaleInPlace multiplies every component by alpha via one SIMD pass.
// Complexity: O(r*c).
func (d *Dense) ScaleInPlace(alpha float32) {
	vek32.MulNumber_Inplace(d.data, alpha)
}

// Clone returns a deep copy of the Dense matrix. Complexity: O(r*c).
func (d *Dense) Clone() Matrix {
	return d.cloneDense()
}

// cloneDense is the concrete-typed clone used throughout the engine.
func (d *Dense) cloneDense() *Dense {
	cp := make([]float32, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.r, c: d.c, data: cp}
}

// Freeze returns a read-only view over an independent deep copy of the
// receiver. Later mutation of the receiver is NOT visible through the frozen
// view; the copy-on-construction discipline removes aliasing ambiguity.
// Complexity: O(r*c).
func (d *Dense) Freeze() Matrix {
	return frozen{d: d.cloneDense()}
}

// Flat returns a copy of the backing storage in row-major order.
// Complexity: O(r*c).
func (d *Dense) Flat() []float32 {
	out := make([]float32, len(d.data))
	copy(out, d.data)

	return out
}

// Data returns the backing slice itself, WITHOUT copying. Mutations through
// the slice are visible in the matrix and vice versa; this is the seam for
// feeding rows into external SIMD kernels. Treat the result as borrowed.
func (d *Dense) Data() []float32 { return d.data }

// String implements fmt.Stringer for easy debugging. Complexity: O(r*c).
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		b.WriteByte('[')
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", d.data[i*d.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// frozen is the read-only handle produced by Dense.Freeze. It owns its
// backing Dense exclusively (a private copy), so no mutator can reach it.
type frozen struct {
	d *Dense
}

func (f frozen) Rows() int                    { return f.d.r }
func (f frozen) Cols() int                    { return f.d.c }
func (f frozen) At(i, j int) (float32, error) { return f.d.At(i, j) }
func (f frozen) Row(i int) ([]float32, error) { return f.d.Row(i) }
func (f frozen) Col(j int) ([]float32, error) { return f.d.Col(j) }
func (f frozen) Clone() Matrix                { return f.d.Clone() }
func (f frozen) String() string               { return f.d.String() }

// denseOf converts any Matrix into a freshly-owned *Dense, preserving
// components exactly. *Dense and frozen inputs use the flat copy; the
// generic path reads via At in fixed i→j order. Complexity: O(r*c).
func denseOf(m Matrix) *Dense {
	switch t := m.(type) {
	case *Dense:
		return t.cloneDense()
	case frozen:
		return t.d.cloneDense()
	}

	// Generic fallback; At errors cannot occur inside the valid index range.
	d := &Dense{r: m.Rows(), c: m.Cols(), data: make([]float32, m.Rows()*m.Cols())}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, _ := m.At(i, j)
			d.data[i*d.c+j] = v
		}
	}

	return d
}
