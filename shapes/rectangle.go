// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import "github.com/galvanized/raytrace/math/lin"

// Rectangle lies in the object-space plane z=0, bounded by
// {left,right,top,bottom}. Construction normalizes the bounds so
// left<right and top<bottom regardless of the order a caller passes
// them in.
type Rectangle struct {
	left, right, top, bottom float64
	trans                    *Transform
	mat                      *Material
	aabb                     *AABB
}

// NewRectangle creates a rectangle with the given object-space
// bounds in the z=0 plane.
func NewRectangle(left, right, top, bottom float64, t *Transform, m *Material) *Rectangle {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	r := &Rectangle{left: left, right: right, top: top, bottom: bottom, trans: t, mat: m}
	r.aabb = worldAABB(t, NewAABB(left, top, 0, right, bottom, 0))
	return r
}

func (r *Rectangle) Transform() *Transform { return r.trans }
func (r *Rectangle) Material() *Material   { return r.mat }
func (r *Rectangle) WorldAABB() *AABB      { return r.aabb }

// Width and Height return the rectangle's object-space extents.
// texture.RectangleMapper takes its extents as arguments and does not
// read these.
func (r *Rectangle) Width() float64  { return r.right - r.left }
func (r *Rectangle) Height() float64 { return r.bottom - r.top }

func (r *Rectangle) Intersect(worldRay *Ray) (*Hit, bool) {
	objRay := r.trans.ToObject(worldRay)
	if lin.AeqZ(objRay.Dir.Z) {
		return nil, false
	}
	t := -objRay.Origin.Z / objRay.Dir.Z
	if t <= 0 {
		return nil, false
	}
	p := objRay.At(t)
	if p.X < r.left || p.X > r.right || p.Y < r.top || p.Y > r.bottom {
		return nil, false
	}
	n := lin.NewV3S(0, 0, -1)
	if objRay.Dir.Z > 0 {
		n = lin.NewV3S(0, 0, 1)
	}
	return &Hit{T: t, Point: p, Normal: n, Ray: worldRay, Shape: r}, true
}
