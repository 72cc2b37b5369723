// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// Cylinder is a finite cylinder of radius 1 centered at the origin,
// axis along Y, spanning y in [-0.5, 0.5] in object space. Dropping Y
// from the ray reduces the side test to the same disc equation a
// sphere solves in the XZ plane; each candidate t is then clipped to
// the cylinder's height.
type Cylinder struct {
	trans *Transform
	mat   *Material
	aabb  *AABB
}

// NewCylinder creates an open (no end caps) finite cylinder.
func NewCylinder(t *Transform, m *Material) *Cylinder {
	c := &Cylinder{trans: t, mat: m}
	c.aabb = worldAABB(t, NewAABB(-1, -0.5, -1, 1, 0.5, 1))
	return c
}

func (c *Cylinder) Transform() *Transform { return c.trans }
func (c *Cylinder) Material() *Material   { return c.mat }
func (c *Cylinder) WorldAABB() *AABB      { return c.aabb }

func (c *Cylinder) Intersect(worldRay *Ray) (*Hit, bool) {
	r := c.trans.ToObject(worldRay)
	hits := cylinderSideHits(r, worldRay, c, -0.5, 0.5)
	return sortHits(hits)
}

// cylinderSideHits solves x^2+z^2=1 for the object ray, keeping only
// roots whose y falls within [yMin, yMax]. Shared by Cylinder and the
// body of CappedCylinder.
func cylinderSideHits(r, worldRay *Ray, shape Shape, yMin, yMax float64) []*Hit {
	a := r.Dir.X*r.Dir.X + r.Dir.Z*r.Dir.Z
	if lin.AeqZ(a) {
		return nil // ray parallel to the axis: never hits the side.
	}
	b := 2 * (r.Origin.X*r.Dir.X + r.Origin.Z*r.Dir.Z)
	cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1
	disc := b*b - 4*a*cc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	var hits []*Hit
	for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t <= 0 {
			continue
		}
		p := r.At(t)
		if p.Y < yMin || p.Y > yMax {
			continue
		}
		n := lin.NewV3S(p.X, 0, p.Z)
		hits = append(hits, &Hit{T: t, Point: p, Normal: n, Ray: worldRay, Shape: shape})
	}
	return hits
}

// CappedCylinder is a Cylinder with two planar end caps at y=+-0.5.
// The caps may carry their own material, used (for example) to paint
// the top and bottom of a tin can differently than its side.
type CappedCylinder struct {
	trans      *Transform
	mat        *Material
	capMat     *Material // nil falls back to mat.
	aabb       *AABB
}

// NewCappedCylinder creates a capped finite cylinder. capMaterial may
// be nil to use the body material on the caps as well.
func NewCappedCylinder(t *Transform, m, capMaterial *Material) *CappedCylinder {
	c := &CappedCylinder{trans: t, mat: m, capMat: capMaterial}
	c.aabb = worldAABB(t, NewAABB(-1, -0.5, -1, 1, 0.5, 1))
	return c
}

func (c *CappedCylinder) Transform() *Transform { return c.trans }
func (c *CappedCylinder) Material() *Material   { return c.mat }
func (c *CappedCylinder) WorldAABB() *AABB      { return c.aabb }

// CapMaterial returns the override material for the end caps,
// falling back to the body material if none was given.
func (c *CappedCylinder) CapMaterial() *Material {
	if c.capMat != nil {
		return c.capMat
	}
	return c.mat
}

func (c *CappedCylinder) Intersect(worldRay *Ray) (*Hit, bool) {
	r := c.trans.ToObject(worldRay)
	hits := cylinderSideHits(r, worldRay, c, -0.5, 0.5)
	caps := append(discCapHits(r, worldRay, c, 0.5, 1), discCapHits(r, worldRay, c, -0.5, 1)...)
	capMat := c.CapMaterial()
	for _, h := range caps {
		h.MatOverride = capMat
	}
	hits = append(hits, caps...)
	return sortHits(hits)
}

// discCapHits intersects the object ray with the plane y=planeY,
// keeping the hit only if it falls within radius of the cylinder
// axis. Normal points away from the cylinder body (+Y on the top
// cap, -Y on the bottom).
func discCapHits(r, worldRay *Ray, shape Shape, planeY, radius float64) []*Hit {
	if lin.AeqZ(r.Dir.Y) {
		return nil
	}
	t := (planeY - r.Origin.Y) / r.Dir.Y
	if t <= 0 {
		return nil
	}
	p := r.At(t)
	if p.X*p.X+p.Z*p.Z > radius*radius {
		return nil
	}
	ny := 1.0
	if planeY < 0 {
		ny = -1.0
	}
	n := lin.NewV3S(0, ny, 0)
	return []*Hit{{T: t, Point: p, Normal: n, Ray: worldRay, Shape: shape}}
}
