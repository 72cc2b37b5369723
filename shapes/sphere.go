// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// Sphere is a sphere of the given radius, centered at the origin in
// object space; Transform positions and scales it in world space.
// http://en.wikipedia.org/wiki/Line-sphere_intersection gives the
// quadratic this solves; unlike physics/caster.go's castRaySphere
// (which only needs the nearest contact for mouse-picking) both
// roots are kept, since transparency traversal needs the far hit too.
type Sphere struct {
	radius float64
	trans  *Transform
	mat    *Material
	aabb   *AABB
}

// NewSphere creates a sphere of the given radius, placed by t.
func NewSphere(radius float64, t *Transform, m *Material) *Sphere {
	s := &Sphere{radius: radius, trans: t, mat: m}
	s.aabb = worldAABB(t, NewAABB(-radius, -radius, -radius, radius, radius, radius))
	return s
}

func (s *Sphere) Transform() *Transform { return s.trans }
func (s *Sphere) Material() *Material   { return s.mat }
func (s *Sphere) WorldAABB() *AABB      { return s.aabb }

// Intersect solves |O + tD|^2 = r^2 for the object-space ray.
func (s *Sphere) Intersect(worldRay *Ray) (*Hit, bool) {
	r := s.trans.ToObject(worldRay)
	a := r.Dir.Dot(r.Dir)
	if lin.AeqZ(a) {
		return nil, false
	}
	b := 2 * r.Origin.Dot(r.Dir)
	c := r.Origin.Dot(r.Origin) - s.radius*s.radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)

	var hits []*Hit
	for _, t := range []float64{t0, t1} {
		if t <= 0 {
			continue
		}
		p := r.At(t)
		n := lin.NewV3().Scale(p, 1/s.radius)
		hits = append(hits, &Hit{T: t, Point: p, Normal: n, Ray: worldRay, Shape: s})
	}
	return sortHits(hits)
}

// worldAABB refits an object-space AABB to world space by carrying
// every corner through t and taking the extents of the result. Used
// by every bounded primitive; objectBox must not be nil.
func worldAABB(t *Transform, objectBox *AABB) *AABB {
	if t.Identity() {
		return objectBox
	}
	corners := objectBox.Corners()
	w := t.PointToWorld(corners[0])
	box := NewAABB(w.X, w.Y, w.Z, w.X, w.Y, w.Z)
	for _, c := range corners[1:] {
		w := t.PointToWorld(c)
		box = box.Union(NewAABB(w.X, w.Y, w.Z, w.X, w.Y, w.Z))
	}
	return box
}
