package matrix_test

import (
	"testing"

	"github.com/Rc-Cookie/math-sub001/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	c := mustDense(t, [][]float32{{1, 2}, {3, 5}})

	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(a, a)) // reflexive
	require.False(t, matrix.Equal(a, c))

	wide := mustDense(t, [][]float32{{1, 2, 0}, {3, 4, 0}})
	require.False(t, matrix.Equal(a, wide)) // shape mismatch is just false

	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))
	require.False(t, matrix.Equal(nil, a))
}

// TestEqualAcrossImplementations verifies that equality is defined by shape
// and values, not by the storage behind them.
func TestEqualAcrossImplementations(t *testing.T) {
	d := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	view := rowsView{rows: [][]float32{{1, 2}, {3, 4}}}

	require.True(t, matrix.Equal(d, view))
	require.True(t, matrix.Equal(view, d))
	require.True(t, matrix.Equal(d.Freeze(), view))
	require.True(t, matrix.Equal(d, d.Freeze()))
}

func TestEqualApprox(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float32{{1.000005, 2}, {3, 3.999995}})

	require.True(t, matrix.EqualApprox(a, b, 1e-4))
	require.False(t, matrix.EqualApprox(a, b, 1e-7))
	require.True(t, matrix.EqualApprox(a, b, matrix.DefaultEpsilon))

	// Exact tolerance degenerates to Equal.
	require.False(t, matrix.EqualApprox(a, b, matrix.Exact))
	require.True(t, matrix.EqualApprox(a, a.Clone(), matrix.Exact))
}
