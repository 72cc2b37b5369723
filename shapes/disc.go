// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import "github.com/galvanized/raytrace/math/lin"

// Disc lies in the object-space plane z=0, bounded by x^2+y^2<=1 —
// a flat circular "cookie" used for lens-flare style decals.
// CappedCylinder/CappedCone do their own cap math (see discCapHits)
// and do not use Disc.
type Disc struct {
	trans *Transform
	mat   *Material
	aabb  *AABB
}

// NewDisc creates a unit disc in the object-space z=0 plane.
func NewDisc(t *Transform, m *Material) *Disc {
	d := &Disc{trans: t, mat: m}
	d.aabb = worldAABB(t, NewAABB(-1, -1, 0, 1, 1, 0))
	return d
}

func (d *Disc) Transform() *Transform { return d.trans }
func (d *Disc) Material() *Material   { return d.mat }
func (d *Disc) WorldAABB() *AABB      { return d.aabb }

func (d *Disc) Intersect(worldRay *Ray) (*Hit, bool) {
	r := d.trans.ToObject(worldRay)
	if lin.AeqZ(r.Dir.Z) {
		return nil, false // ray parallel to the disc's plane.
	}
	t := -r.Origin.Z / r.Dir.Z
	if t <= 0 {
		return nil, false
	}
	p := r.At(t)
	if p.X*p.X+p.Y*p.Y > 1 {
		return nil, false
	}
	n := lin.NewV3S(0, 0, -1)
	if r.Dir.Z > 0 {
		n = lin.NewV3S(0, 0, 1)
	}
	return &Hit{T: t, Point: p, Normal: n, Ray: worldRay, Shape: d}, true
}
