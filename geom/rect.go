// SPDX-License-Identifier: MIT

// Package geom provides axis-aligned rectangles and rays over the float32
// vector types. All types are plain values; operations return new values.
package geom

import (
	"github.com/chewxy/math32"

	"github.com/Rc-Cookie/math-sub001/vec"
)

// Rect represents an axis-aligned rectangle.
// Min is the corner with the minimum coordinates, Max the maximum.
type Rect struct {
	Min, Max vec.Vec2
}

// NewRect creates a rectangle from two corner points.
// The points are normalized so Min <= Max on both axes.
func NewRect(p1, p2 vec.Vec2) Rect {
	return Rect{
		Min: vec.V2(math32.Min(p1.X, p2.X), math32.Min(p1.Y, p2.Y)),
		Max: vec.V2(math32.Max(p1.X, p2.X), math32.Max(p1.Y, p2.Y)),
	}
}

// RectFromSize creates a rectangle from an origin and extents.
// Negative extents are normalized away.
func RectFromSize(origin vec.Vec2, w, h float32) Rect {
	return NewRect(origin, origin.Add(vec.V2(w, h)))
}

// W returns the width of the rectangle.
func (r Rect) W() float32 {
	return r.Max.X - r.Min.X
}

// H returns the height of the rectangle.
func (r Rect) H() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() vec.Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Canon returns the canonical form of r with Min <= Max on both axes.
func (r Rect) Canon() Rect {
	return NewRect(r.Min, r.Max)
}

// Contains returns true if the point is inside the rectangle (borders
// included).
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects returns true if r and other overlap (shared borders count).
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Intersection returns the overlapping region of r and other.
// ok is false when the rectangles do not overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	out := Rect{
		Min: vec.V2(math32.Max(r.Min.X, other.Min.X), math32.Max(r.Min.Y, other.Min.Y)),
		Max: vec.V2(math32.Min(r.Max.X, other.Max.X), math32.Min(r.Max.Y, other.Max.Y)),
	}
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y {
		return Rect{}, false
	}
	return out, true
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: vec.V2(math32.Min(r.Min.X, other.Min.X), math32.Min(r.Min.Y, other.Min.Y)),
		Max: vec.V2(math32.Max(r.Max.X, other.Max.X), math32.Max(r.Max.Y, other.Max.Y)),
	}
}

// Expand returns r grown by d on every side. A negative d shrinks; the
// result is canonicalized.
func (r Rect) Expand(d float32) Rect {
	return NewRect(
		r.Min.Sub(vec.V2(d, d)),
		r.Max.Add(vec.V2(d, d)),
	)
}
