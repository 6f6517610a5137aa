// SPDX-License-Identifier: MIT

package geom

import "github.com/Rc-Cookie/math-sub001/vec"

// Ray is a half-line: an origin point and a direction vector.
// The direction does not need to be normalized; parameter values returned by
// the intersection tests are in units of its length.
type Ray struct {
	Origin, Dir vec.Vec2
}

// NewRay creates a ray from an origin and a direction.
func NewRay(origin, dir vec.Vec2) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) vec.Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectRect performs the slab test against an axis-aligned rectangle.
// It returns the parameter of the entry point and true on a hit with t >= 0;
// a ray starting inside the rectangle hits at t == 0.
func (r Ray) IntersectRect(rect Rect) (float32, bool) {
	tmin := float32(-1)
	tmax := float32(-1)
	first := true

	// Per-axis slab: clip the parameter interval against both planes.
	for axis := 0; axis < 2; axis++ {
		var o, d, lo, hi float32
		if axis == 0 {
			o, d, lo, hi = r.Origin.X, r.Dir.X, rect.Min.X, rect.Max.X
		} else {
			o, d, lo, hi = r.Origin.Y, r.Dir.Y, rect.Min.Y, rect.Max.Y
		}

		if d == 0 {
			// Parallel to the slab: either always inside it or never.
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if first {
			tmin, tmax = t1, t2
			first = false
			continue
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if first {
		// Both components zero: the degenerate ray is a point.
		if rect.Contains(r.Origin) {
			return 0, true
		}
		return 0, false
	}
	if tmin > tmax || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		// Origin inside the rectangle.
		return 0, true
	}
	return tmin, true
}
