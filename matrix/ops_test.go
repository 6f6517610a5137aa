// Package matrix_test contains unit tests for the value-returning operation
// kernels: Add/Sub/Scale/Hadamard/Mul/Transpose/MatVec/Trace.
package matrix_test

import (
	"testing"

	"github.com/Rc-Cookie/math-sub001/matrix"
	"github.com/stretchr/testify/require"
)

// rowsView is a deliberately foreign Matrix implementation used to force the
// interface fallback paths of the kernels (no *Dense fast path applies).
type rowsView struct {
	rows [][]float32
}

func (v rowsView) Rows() int { return len(v.rows) }
func (v rowsView) Cols() int { return len(v.rows[0]) }

func (v rowsView) At(i, j int) (float32, error) {
	if i < 0 || i >= len(v.rows) || j < 0 || j >= len(v.rows[0]) {
		return 0, matrix.ErrOutOfRange
	}

	return v.rows[i][j], nil
}

func (v rowsView) Row(i int) ([]float32, error) {
	if i < 0 || i >= len(v.rows) {
		return nil, matrix.ErrOutOfRange
	}
	out := make([]float32, len(v.rows[i]))
	copy(out, v.rows[i])

	return out, nil
}

func (v rowsView) Col(j int) ([]float32, error) {
	if j < 0 || j >= len(v.rows[0]) {
		return nil, matrix.ErrOutOfRange
	}
	out := make([]float32, len(v.rows))
	for i := range v.rows {
		out[i] = v.rows[i][j]
	}

	return out, nil
}

func (v rowsView) Clone() matrix.Matrix {
	cp := make([][]float32, len(v.rows))
	for i, r := range v.rows {
		cp[i] = append([]float32(nil), r...)
	}

	return rowsView{rows: cp}
}

// TestAddSub verifies component-wise sum and difference on the fast path.
func TestAddSub(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float32{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{11, 22, 33, 44}, sum.Flat())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float32{9, 18, 27, 36}, diff.Flat())

	// Operands stay untouched (value semantics).
	require.Equal(t, []float32{1, 2, 3, 4}, a.Flat())
}

// TestAddDimensionMismatch pins the guard from the reference scenarios:
// adding a 2x3 and a 3x2 fails with ErrDimensionMismatch.
func TestAddDimensionMismatch(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddFallback drives the interface path with a foreign implementation.
func TestAddFallback(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := rowsView{rows: [][]float32{{5, 6}, {7, 8}}}

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{6, 8, 10, 12}, sum.Flat())
}

// TestScale verifies scalar multiplication.
func TestScale(t *testing.T) {
	a := mustDense(t, [][]float32{{1, -2}, {3, 0}})

	res, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, []float32{-2, 4, -6, 0}, res.Flat())
	require.Equal(t, []float32{1, -2, 3, 0}, a.Flat()) // input untouched
}

// TestHadamard verifies the component-wise product.
func TestHadamard(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float32{{2, 0}, {1, -1}})

	res, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{2, 0, 3, -4}, res.Flat())
}

// TestMul verifies matrix multiplication, shape checks and the fallback.
func TestMul(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2, 3}, {4, 5, 6}})      // 2x3
	b := mustDense(t, [][]float32{{7, 8}, {9, 10}, {11, 12}}) // 3x2

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	require.Equal(t, []float32{58, 64, 139, 154}, prod.Flat())

	// Incompatible inner dimensions fail fast.
	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// The foreign-implementation path computes the same product.
	prodIface, err := matrix.Mul(rowsView{rows: [][]float32{{1, 2, 3}, {4, 5, 6}}}, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(prod, prodIface))
}

// TestTranspose verifies transposition of a rectangular matrix.
func TestTranspose(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float32{1, 4, 2, 5, 3, 6}, tr.Flat())

	// Double transposition restores the original.
	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, back))
}

// TestMatVec verifies the matrix-vector product and its length guard.
func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(a, []float32{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float32{-1, -1, -1}, y)

	_, err = matrix.MatVec(a, []float32{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTrace verifies the diagonal sum and its square-only contract.
func TestTrace(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 9}, {9, 2}})

	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	require.Equal(t, float32(3), tr)

	_, err = matrix.Trace(mustDense(t, [][]float32{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
