// Package matrix_test contains unit tests for the Dense storage type:
// constructors, accessors, in-place mutators and the freeze discipline.
package matrix_test

import (
	"testing"

	"github.com/Rc-Cookie/math-sub001/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseBadShape ensures that NewDense rejects non-positive dimensions.
func TestNewDenseBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 5)             // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape
	_, err = matrix.NewDense(5, -1)             // negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape
}

// TestNewDenseFromRows verifies row ingestion and its shape validation.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)       // valid 2x3 input
	require.Equal(t, 2, m.Rows()) // two rows
	require.Equal(t, 3, m.Cols()) // three columns

	v, err := m.At(1, 2) // bottom-right component
	require.NoError(t, err)
	require.Equal(t, float32(6), v)

	_, err = matrix.NewDenseFromRows(nil)       // empty row set
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDenseFromRows([][]float32{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape) // zero-length row

	_, err = matrix.NewDenseFromRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape) // ragged rows
}

// TestNewDenseFromCols verifies that column ingestion transposes correctly.
func TestNewDenseFromCols(t *testing.T) {
	m, err := matrix.NewDenseFromCols([][]float32{{1, 4}, {2, 5}, {3, 6}})
	require.NoError(t, err)       // three columns of height two
	require.Equal(t, 2, m.Rows()) // rows = column height
	require.Equal(t, 3, m.Cols()) // cols = column count

	row, err := m.Row(0) // first row collects the column heads
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3}, row)

	_, err = matrix.NewDenseFromCols([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape) // ragged columns
}

// TestNewDenseFromFlat verifies flat ingestion with an offset and its guards.
func TestNewDenseFromFlat(t *testing.T) {
	buf := []float32{9, 9, 1, 2, 3, 4} // two leading padding values
	m, err := matrix.NewDenseFromFlat(2, 2, buf, 2)
	require.NoError(t, err) // offset skips the padding

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, float32(4), v)

	buf[2] = 42       // mutate the source after construction
	v, _ = m.At(0, 0) // the copy must not observe it
	require.Equal(t, float32(1), v)

	_, err = matrix.NewDenseFromFlat(2, 2, buf, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // negative offset

	_, err = matrix.NewDenseFromFlat(3, 3, buf, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape) // buffer too short
}

// TestNewDenseRefAliases ensures the reference constructor shares storage
// both ways, as its contract states.
func TestNewDenseRefAliases(t *testing.T) {
	buf := []float32{1, 2, 3, 4}
	m, err := matrix.NewDenseRef(2, 2, buf)
	require.NoError(t, err)

	buf[0] = 7 // mutate through the slice
	v, _ := m.At(0, 0)
	require.Equal(t, float32(7), v) // visible through the matrix

	require.NoError(t, m.Set(1, 1, 9)) // mutate through the matrix
	require.Equal(t, float32(9), buf[3])

	_, err = matrix.NewDenseRef(2, 2, buf[:3])
	require.ErrorIs(t, err, matrix.ErrBadShape) // length must equal r*c
}

// TestNewDiagonalAndIdentity verifies the diagonal constructors.
func TestNewDiagonalAndIdentity(t *testing.T) {
	d, err := matrix.NewDiagonal(2, 3, 4)
	require.NoError(t, err)

	diag, _ := matrix.IsDiagonal(d, matrix.Exact)
	require.True(t, diag) // only the diagonal is populated
	v, _ := d.At(2, 2)
	require.Equal(t, float32(4), v)

	_, err = matrix.NewDiagonal()
	require.ErrorIs(t, err, matrix.ErrBadShape) // no entries

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	tr, err := matrix.Trace(id)
	require.NoError(t, err)
	require.Equal(t, float32(3), tr) // trace of I_3
}

// TestAtSetOutOfRange ensures indexers fail with ErrOutOfRange, never panic.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // negative row
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // column past the end
	err = m.Set(2, 0, 1.5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // row past the end
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // row extraction
	_, err = m.Col(-2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // column extraction
}

// TestSwapRowsAndCols verifies the in-place swap mutators.
func TestSwapRowsAndCols(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, m.SwapRows(0, 1))
	row, _ := m.Row(0)
	require.Equal(t, []float32{3, 4}, row) // rows exchanged

	require.NoError(t, m.SwapCols(0, 1))
	row, _ = m.Row(0)
	require.Equal(t, []float32{4, 3}, row) // columns exchanged

	require.ErrorIs(t, m.SwapRows(0, 9), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(9, 0), matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone returns a deep copy sharing nothing.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float32{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone().(*matrix.Dense) // concrete clone of a *Dense
	require.NoError(t, clone.Set(0, 0, 3))

	orig, _ := m.At(0, 0)
	require.Equal(t, float32(1), orig) // original untouched
	mod, _ := clone.At(0, 0)
	require.Equal(t, float32(3), mod) // clone reflects the write
}

// TestFreezeCopies ensures a frozen view does not observe later mutation of
// the matrix it was taken from.
func TestFreezeCopies(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	view := m.Freeze() // read-only handle over a private copy
	require.NoError(t, m.Set(0, 0, 99))

	v, err := view.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), v) // the view kept the original value
}

// TestAddScaleInPlace verifies the in-place arithmetic mutators.
func TestAddScaleInPlace(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float32{{10, 20}, {30, 40}})
	require.NoError(t, err)

	require.NoError(t, a.AddInPlace(b))
	require.Equal(t, []float32{11, 22, 33, 44}, a.Flat())

	a.ScaleInPlace(0.5)
	require.Equal(t, []float32{5.5, 11, 16.5, 22}, a.Flat())

	wide, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, a.AddInPlace(wide), matrix.ErrDimensionMismatch)
}

// TestFlatAndData verifies the copying and aliasing conversion seams.
func TestFlatAndData(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	flat := m.Flat()
	flat[0] = 42 // mutating the copy must not touch the matrix
	v, _ := m.At(0, 0)
	require.Equal(t, float32(1), v)

	data := m.Data()
	data[0] = 42 // the borrowed slice aliases the storage
	v, _ = m.At(0, 0)
	require.Equal(t, float32(42), v)
}

// TestZerosAndIdentityLike verifies the shape-mirroring facades.
func TestZerosAndIdentityLike(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = matrix.IdentityLike(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare) // 2x3 has no identity twin

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	id, err := matrix.IdentityLike(sq)
	require.NoError(t, err)
	v, _ := id.At(1, 1)
	require.Equal(t, float32(1), v)
}

// TestStringOutput checks the debugging representation.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
