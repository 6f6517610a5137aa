package geom_test

import (
	"testing"

	"github.com/Rc-Cookie/math-sub001/geom"
	"github.com/Rc-Cookie/math-sub001/vec"
	"github.com/stretchr/testify/require"
)

func TestRayAt(t *testing.T) {
	r := geom.NewRay(vec.V2(1, 2), vec.V2(3, -4))

	require.Equal(t, vec.V2(1, 2), r.At(0))
	require.Equal(t, vec.V2(4, -2), r.At(1))
	require.Equal(t, vec.V2(2.5, 0), r.At(0.5))
}

func TestRayIntersectRect(t *testing.T) {
	box := geom.NewRect(vec.V2(2, -1), vec.V2(4, 1))

	// Head-on hit along the x axis: enters at x=2, so t=2.
	tEnter, ok := geom.NewRay(vec.V2(0, 0), vec.V2(1, 0)).IntersectRect(box)
	require.True(t, ok)
	require.Equal(t, float32(2), tEnter)

	// Diagonal hit.
	tEnter, ok = geom.NewRay(vec.V2(0, -3), vec.V2(1, 1)).IntersectRect(box)
	require.True(t, ok)
	require.Equal(t, float32(2), tEnter) // enters through the bottom at (2,-1)

	// Pointing away: the box is behind the origin.
	_, ok = geom.NewRay(vec.V2(0, 0), vec.V2(-1, 0)).IntersectRect(box)
	require.False(t, ok)

	// Parallel miss above the box.
	_, ok = geom.NewRay(vec.V2(0, 5), vec.V2(1, 0)).IntersectRect(box)
	require.False(t, ok)

	// Parallel hit inside the slab.
	tEnter, ok = geom.NewRay(vec.V2(0, 0.5), vec.V2(1, 0)).IntersectRect(box)
	require.True(t, ok)
	require.Equal(t, float32(2), tEnter)
}

func TestRayIntersectRectFromInside(t *testing.T) {
	box := geom.NewRect(vec.V2(0, 0), vec.V2(10, 10))

	tEnter, ok := geom.NewRay(vec.V2(5, 5), vec.V2(1, 1)).IntersectRect(box)
	require.True(t, ok)
	require.Equal(t, float32(0), tEnter) // already inside
}

func TestRayDegenerate(t *testing.T) {
	box := geom.NewRect(vec.V2(0, 0), vec.V2(1, 1))

	// A zero-direction ray is a point test.
	tEnter, ok := geom.NewRay(vec.V2(0.5, 0.5), vec.Vec2{}).IntersectRect(box)
	require.True(t, ok)
	require.Equal(t, float32(0), tEnter)

	_, ok = geom.NewRay(vec.V2(2, 2), vec.Vec2{}).IntersectRect(box)
	require.False(t, ok)
}
