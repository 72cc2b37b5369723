// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import "github.com/galvanized/raytrace/math/lin"

// Polygon is a planar, convex-or-concave polygon of 4 or more
// vertices. The plane normal comes from the first three vertices;
// after the ray-plane hit, the polygon and hit point are flattened
// to 2D by dropping whichever axis the normal points along most
// strongly, and inclusion is tested with the even-odd crossing-count
// rule against the flattened edges.
type Polygon struct {
	verts []*lin.V3
	trans *Transform
	mat   *Material
	aabb  *AABB
}

// NewPolygon creates a planar polygon from 4 or more object-space
// vertices, given in order around the boundary.
func NewPolygon(verts []*lin.V3, t *Transform, m *Material) *Polygon {
	p := &Polygon{verts: verts, trans: t, mat: m}
	box := NewAABB(verts[0].X, verts[0].Y, verts[0].Z, verts[0].X, verts[0].Y, verts[0].Z)
	for _, v := range verts[1:] {
		box = box.Union(NewAABB(v.X, v.Y, v.Z, v.X, v.Y, v.Z))
	}
	p.aabb = worldAABB(t, box)
	return p
}

func (p *Polygon) Transform() *Transform { return p.trans }
func (p *Polygon) Material() *Material   { return p.mat }
func (p *Polygon) WorldAABB() *AABB      { return p.aabb }

func (p *Polygon) planeNormal() *lin.V3 {
	e1 := lin.NewV3().Sub(p.verts[1], p.verts[0])
	e2 := lin.NewV3().Sub(p.verts[2], p.verts[0])
	return lin.NewV3().Cross(e1, e2).Unit()
}

func (p *Polygon) Intersect(worldRay *Ray) (*Hit, bool) {
	r := p.trans.ToObject(worldRay)
	n := p.planeNormal()
	denom := n.Dot(r.Dir)
	if lin.AeqZ(denom) {
		return nil, false // ray parallel to the polygon's plane.
	}
	toPlane := lin.NewV3().Sub(p.verts[0], r.Origin)
	t := toPlane.Dot(n) / denom
	if t <= 0 {
		return nil, false
	}
	hitPoint := r.At(t)

	// Drop the axis the normal points along most strongly, flattening
	// both the polygon and the hit point to the remaining two axes.
	ax, ay, az := n.X, n.Y, n.Z
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if az < 0 {
		az = -az
	}
	var project func(*lin.V3) (float64, float64)
	switch {
	case ax >= ay && ax >= az:
		project = func(v *lin.V3) (float64, float64) { return v.Y, v.Z }
	case ay >= ax && ay >= az:
		project = func(v *lin.V3) (float64, float64) { return v.X, v.Z }
	default:
		project = func(v *lin.V3) (float64, float64) { return v.X, v.Y }
	}

	px, py := project(hitPoint)
	if !insidePolygon(p.verts, px, py, project) {
		return nil, false
	}
	return &Hit{T: t, Point: hitPoint, Normal: n, Ray: worldRay, Shape: p}, true
}

// insidePolygon applies the even-odd crossing-count rule: count
// how many polygon edges cross the horizontal ray extending from
// (px,py) toward +u; an odd count means the point is inside.
// http://en.wikipedia.org/wiki/Point_in_polygon
func insidePolygon(verts []*lin.V3, px, py float64, project func(*lin.V3) (float64, float64)) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := project(verts[i])
		xj, yj := project(verts[j])
		if (yi > py) != (yj > py) {
			xCross := (xj-xi)*(py-yi)/(yj-yi) + xi
			if px < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
