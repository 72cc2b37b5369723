// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// AABB is an axis aligned bounding box, used by the octree to route
// shapes into octants.
// Named Sx,Sy,Sz/Lx,Ly,Lz (smallest/largest corner) for the same
// reason physics.Abox does: vertices sort cheaply along any axis
// without re-deriving min/max from a center+extent form.
type AABB struct {
	Sx, Sy, Sz float64 // smallest vertex.
	Lx, Ly, Lz float64 // largest vertex.
}

// NewAABB returns an AABB with the given smallest and largest
// corners, swapping components so Sx<=Lx etc regardless of the
// order the caller supplies them in.
func NewAABB(ax, ay, az, bx, by, bz float64) *AABB {
	return &AABB{
		Sx: math.Min(ax, bx), Sy: math.Min(ay, by), Sz: math.Min(az, bz),
		Lx: math.Max(ax, bx), Ly: math.Max(ay, by), Lz: math.Max(az, bz),
	}
}

// Overlaps returns true if a and b intersect. Boxes that only touch
// along a face, edge, or point do not count as overlapping.
func (a *AABB) Overlaps(b *AABB) bool {
	return a.Lx > b.Sx && a.Sx < b.Lx &&
		a.Ly > b.Sy && a.Sy < b.Ly &&
		a.Lz > b.Sz && a.Sz < b.Lz
}

// Contains returns true if point p is inside or on the boundary of a.
func (a *AABB) Contains(p *lin.V3) bool {
	return p.X >= a.Sx && p.X <= a.Lx &&
		p.Y >= a.Sy && p.Y <= a.Ly &&
		p.Z >= a.Sz && p.Z <= a.Lz
}

// Union returns the smallest AABB containing both a and b.
func (a *AABB) Union(b *AABB) *AABB {
	return &AABB{
		Sx: math.Min(a.Sx, b.Sx), Sy: math.Min(a.Sy, b.Sy), Sz: math.Min(a.Sz, b.Sz),
		Lx: math.Max(a.Lx, b.Lx), Ly: math.Max(a.Ly, b.Ly), Lz: math.Max(a.Lz, b.Lz),
	}
}

// Centre returns the midpoint of the box.
func (a *AABB) Centre() *lin.V3 {
	return &lin.V3{
		X: (a.Sx + a.Lx) / 2,
		Y: (a.Sy + a.Ly) / 2,
		Z: (a.Sz + a.Lz) / 2,
	}
}

// Corners returns all 8 vertices of the box, used when refitting a
// world-space AABB after a Transform (the 8 object-space corners are
// each carried to world space and the box re-derived from their
// extents, since a rotated box is not itself axis aligned).
func (a *AABB) Corners() [8]*lin.V3 {
	return [8]*lin.V3{
		{X: a.Sx, Y: a.Sy, Z: a.Sz}, {X: a.Sx, Y: a.Sy, Z: a.Lz},
		{X: a.Sx, Y: a.Ly, Z: a.Sz}, {X: a.Sx, Y: a.Ly, Z: a.Lz},
		{X: a.Lx, Y: a.Sy, Z: a.Sz}, {X: a.Lx, Y: a.Sy, Z: a.Lz},
		{X: a.Lx, Y: a.Ly, Z: a.Sz}, {X: a.Lx, Y: a.Ly, Z: a.Lz},
	}
}

// Infinite returns an AABB that contains all of space, used by scene
// as the octree's region when no shape has a finite bound.
func Infinite() *AABB {
	return &AABB{
		Sx: -lin.Large, Sy: -lin.Large, Sz: -lin.Large,
		Lx: lin.Large, Ly: lin.Large, Lz: lin.Large,
	}
}
