// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package shapes provides the ray-tracer's geometric kernel: the
// world/object Transform, the axis-aligned bounding box used by the
// octree, the Ray and Hit records, and one file per analytic
// primitive (sphere, cylinder, cone, disc, rectangle, polygon,
// triangle, polymesh).
package shapes

import "github.com/galvanized/raytrace/math/lin"

// Ray is a parametric line origin + t*dir. Shadow marks rays cast
// from a surface point toward a light; shading sets it and
// Transform.ToObject carries it into object space, but no
// intersection routine changes its search on it, so a shadow ray
// still collects every hit along its whole length.
type Ray struct {
	Origin *lin.V3
	Dir    *lin.V3
	Shadow bool
}

// NewRay creates a ray with the given origin and direction. The
// direction is not required to be unit length; every intersection
// routine in this package tolerates a scaled direction vector.
func NewRay(origin, dir *lin.V3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// At returns the point origin + t*dir.
func (r *Ray) At(t float64) *lin.V3 {
	p := &lin.V3{}
	p.Scale(r.Dir, t)
	p.Add(p, r.Origin)
	return p
}
