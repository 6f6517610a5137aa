// SPDX-License-Identifier: MIT

// Package vec provides small fixed-size float32 vectors (Vec2, Vec3, Vec4)
// with closed-form value-semantics operations, plus vek-accelerated helpers
// over plain []float32 slices.
//
// All types are plain value types: operations return new values and never
// mutate the receiver, so vectors can be copied, compared and shared freely.
package vec

import "github.com/chewxy/math32"

// Vec2 represents a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled by a scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the vector with both components negated.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the scalar z component).
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of the vector.
func (v Vec2) LenSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between two points.
func (v Vec2) Dist(w Vec2) float32 {
	return v.Sub(w).Len()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// ApproxEq reports whether every component of v is within eps of w.
func (v Vec2) ApproxEq(w Vec2, eps float32) bool {
	return math32.Abs(v.X-w.X) <= eps && math32.Abs(v.Y-w.Y) <= eps
}

// Slice returns the components as a fresh []float32.
func (v Vec2) Slice() []float32 {
	return []float32{v.X, v.Y}
}

// Vec3 represents a 3D point or vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience constructor for Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the vector with all components negated.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the 3D cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LenSq returns the squared length of the vector.
func (v Vec3) LenSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dist returns the distance between two points.
func (v Vec3) Dist(w Vec3) float32 {
	return v.Sub(w).Len()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Lerp performs linear interpolation between two vectors.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// ApproxEq reports whether every component of v is within eps of w.
func (v Vec3) ApproxEq(w Vec3, eps float32) bool {
	return math32.Abs(v.X-w.X) <= eps &&
		math32.Abs(v.Y-w.Y) <= eps &&
		math32.Abs(v.Z-w.Z) <= eps
}

// Slice returns the components as a fresh []float32.
func (v Vec3) Slice() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Vec4 represents a 4D vector, typically a homogeneous 3D coordinate.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience constructor for Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the component-wise sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Scale returns the vector scaled by a scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns the vector with all components negated.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Len returns the Euclidean length of the vector.
func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// LenSq returns the squared length of the vector.
func (v Vec4) LenSq() float32 {
	return v.Dot(v)
}

// Dist returns the distance between two points.
func (v Vec4) Dist(w Vec4) float32 {
	return v.Sub(w).Len()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

// Lerp performs linear interpolation between two vectors.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 {
	return v.Add(w.Sub(v).Scale(t))
}

// ApproxEq reports whether every component of v is within eps of w.
func (v Vec4) ApproxEq(w Vec4, eps float32) bool {
	return math32.Abs(v.X-w.X) <= eps &&
		math32.Abs(v.Y-w.Y) <= eps &&
		math32.Abs(v.Z-w.Z) <= eps &&
		math32.Abs(v.W-w.W) <= eps
}

// Slice returns the components as a fresh []float32.
func (v Vec4) Slice() []float32 {
	return []float32{v.X, v.Y, v.Z, v.W}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
