// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
)

// Triangle holds three object-space vertices and, optionally, a
// colour per vertex for Gouraud-style interpolated diffuse shading.
// Intersection uses the Moller-Trumbore algorithm, which solves
// directly for the barycentric coordinates (u,v) without first
// computing the plane's normal.
type Triangle struct {
	v0, v1, v2    *lin.V3
	c0, c1, c2    *colour.Colour // nil unless built by NewTriangleVertexColours.
	trans         *Transform
	mat           *Material
	aabb          *AABB
}

// NewTriangle creates a flat-shaded triangle.
func NewTriangle(v0, v1, v2 *lin.V3, t *Transform, m *Material) *Triangle {
	tr := &Triangle{v0: v0, v1: v1, v2: v2, trans: t, mat: m}
	tr.aabb = triangleWorldAABB(t, v0, v1, v2)
	return tr
}

// NewTriangleVertexColours creates a triangle whose diffuse colour at
// a hit is interpolated from per-vertex colours using the hit's
// barycentric weights, overriding the material's flat Diffuse.
func NewTriangleVertexColours(v0, v1, v2 *lin.V3, c0, c1, c2 *colour.Colour, t *Transform, m *Material) *Triangle {
	tr := NewTriangle(v0, v1, v2, t, m)
	tr.c0, tr.c1, tr.c2 = c0, c1, c2
	return tr
}

func triangleWorldAABB(t *Transform, v0, v1, v2 *lin.V3) *AABB {
	box := NewAABB(v0.X, v0.Y, v0.Z, v0.X, v0.Y, v0.Z)
	box = box.Union(NewAABB(v1.X, v1.Y, v1.Z, v1.X, v1.Y, v1.Z))
	box = box.Union(NewAABB(v2.X, v2.Y, v2.Z, v2.X, v2.Y, v2.Z))
	return worldAABB(t, box)
}

func (tr *Triangle) Transform() *Transform { return tr.trans }
func (tr *Triangle) Material() *Material   { return tr.mat }
func (tr *Triangle) WorldAABB() *AABB      { return tr.aabb }

// HasVertexColours reports whether per-vertex colours were given.
func (tr *Triangle) HasVertexColours() bool { return tr.c0 != nil }

// VertexColour returns the diffuse colour at a hit's barycentric
// coordinates (u,v), blending c0/c1/c2 by weight (1-u-v, u, v) —
// Heron's-formula sub-triangle-area barycentrics reduce, for a flat
// triangle, to exactly the (u,v) Moller-Trumbore already solves for.
func (tr *Triangle) VertexColour(u, v float64) *colour.Colour {
	w0, w1, w2 := 1-u-v, u, v
	c := &colour.Colour{}
	c.AddScaled(tr.c0, w0)
	c.AddScaled(tr.c1, w1)
	c.AddScaled(tr.c2, w2)
	return c
}

func (tr *Triangle) Intersect(worldRay *Ray) (*Hit, bool) {
	r := tr.trans.ToObject(worldRay)
	e1 := lin.NewV3().Sub(tr.v1, tr.v0)
	e2 := lin.NewV3().Sub(tr.v2, tr.v0)
	p := lin.NewV3().Cross(r.Dir, e2)
	det := e1.Dot(p)
	if lin.AeqZ(det) {
		return nil, false // ray parallel to the triangle's plane.
	}
	invDet := 1 / det
	tvec := lin.NewV3().Sub(r.Origin, tr.v0)
	u := tvec.Dot(p) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}
	q := lin.NewV3().Cross(tvec, e1)
	v := r.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}
	t := e2.Dot(q) * invDet
	if t <= 0 {
		return nil, false
	}
	n := lin.NewV3().Cross(e1, e2).Unit()
	hit := &Hit{T: t, Point: r.At(t), Normal: n, Ray: worldRay, Shape: tr, U: u, V: v}
	if tr.HasVertexColours() {
		hit.MatOverride = &Material{
			Diffuse:      tr.VertexColour(u, v),
			Specular:     tr.mat.Specular,
			Transparency: tr.mat.Transparency,
		}
	}
	return hit, true
}
