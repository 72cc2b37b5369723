// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// Cone has its apex at the origin and opens along +Y: x^2+z^2=y^2.
// yTop/yBottom clip the infinite double cone to a finite strip, the
// same way Cylinder clips its infinite tube. Normal is the same
// simplification the cylinder uses: (x, 0, z), not the true conical
// normal that accounts for the slant — carried over unchanged from
// the source system's simplified shading.
type Cone struct {
	yTop, yBottom float64
	trans         *Transform
	mat           *Material
	aabb          *AABB
}

// NewCone creates an open (no caps) cone strip between yTop and
// yBottom (yTop closer to the apex).
func NewCone(yTop, yBottom float64, t *Transform, m *Material) *Cone {
	r := math.Max(math.Abs(yTop), math.Abs(yBottom))
	c := &Cone{yTop: yTop, yBottom: yBottom, trans: t, mat: m}
	c.aabb = worldAABB(t, NewAABB(-r, math.Min(yTop, yBottom), -r, r, math.Max(yTop, yBottom), r))
	return c
}

func (c *Cone) Transform() *Transform { return c.trans }
func (c *Cone) Material() *Material   { return c.mat }
func (c *Cone) WorldAABB() *AABB      { return c.aabb }

func (c *Cone) Intersect(worldRay *Ray) (*Hit, bool) {
	r := c.trans.ToObject(worldRay)
	hits := coneSideHits(r, worldRay, c, c.yTop, c.yBottom)
	return sortHits(hits)
}

// coneSideHits solves x^2+z^2=y^2, keeping roots whose y falls in
// [yTop, yBottom] (allowing either ordering of the two bounds).
func coneSideHits(r, worldRay *Ray, shape Shape, yTop, yBottom float64) []*Hit {
	lo, hi := yTop, yBottom
	if lo > hi {
		lo, hi = hi, lo
	}
	a := r.Dir.X*r.Dir.X + r.Dir.Z*r.Dir.Z - r.Dir.Y*r.Dir.Y
	b := 2 * (r.Origin.X*r.Dir.X + r.Origin.Z*r.Dir.Z - r.Origin.Y*r.Dir.Y)
	cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - r.Origin.Y*r.Origin.Y

	var roots []float64
	if lin.AeqZ(a) {
		if lin.AeqZ(b) {
			return nil
		}
		roots = []float64{-cc / b}
	} else {
		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		roots = []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
	}

	var hits []*Hit
	for _, t := range roots {
		if t <= 0 {
			continue
		}
		p := r.At(t)
		if p.Y < lo || p.Y > hi {
			continue
		}
		n := lin.NewV3S(p.X, 0, p.Z)
		hits = append(hits, &Hit{T: t, Point: p, Normal: n, Ray: worldRay, Shape: shape})
	}
	return hits
}

// CappedCone is a Cone with up to two disc caps at yTop and yBottom.
// The cap at yTop is omitted when yTop <= 0, since the apex pinches
// the cone to a single point there and a cap would be degenerate.
type CappedCone struct {
	yTop, yBottom float64
	trans         *Transform
	mat           *Material
	capMat        *Material
	aabb          *AABB
}

// NewCappedCone creates a capped cone strip. capMaterial may be nil
// to use the body material on the caps as well.
func NewCappedCone(yTop, yBottom float64, t *Transform, m, capMaterial *Material) *CappedCone {
	r := math.Max(math.Abs(yTop), math.Abs(yBottom))
	c := &CappedCone{yTop: yTop, yBottom: yBottom, trans: t, mat: m, capMat: capMaterial}
	c.aabb = worldAABB(t, NewAABB(-r, math.Min(yTop, yBottom), -r, r, math.Max(yTop, yBottom), r))
	return c
}

func (c *CappedCone) Transform() *Transform { return c.trans }
func (c *CappedCone) Material() *Material   { return c.mat }
func (c *CappedCone) WorldAABB() *AABB      { return c.aabb }

// CapMaterial returns the override material for the end caps,
// falling back to the body material if none was given.
func (c *CappedCone) CapMaterial() *Material {
	if c.capMat != nil {
		return c.capMat
	}
	return c.mat
}

func (c *CappedCone) Intersect(worldRay *Ray) (*Hit, bool) {
	r := c.trans.ToObject(worldRay)
	hits := coneSideHits(r, worldRay, c, c.yTop, c.yBottom)
	capMat := c.CapMaterial()

	bottomRadius := math.Abs(c.yBottom)
	bottom := discCapHits(r, worldRay, c, c.yBottom, bottomRadius)
	for _, h := range bottom {
		h.MatOverride = capMat
	}
	hits = append(hits, bottom...)

	if c.yTop > 0 {
		topRadius := math.Abs(c.yTop)
		top := discCapHits(r, worldRay, c, c.yTop, topRadius)
		for _, h := range top {
			h.MatOverride = capMat
		}
		hits = append(hits, top...)
	}
	return sortHits(hits)
}
