// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"sort"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
)

// Material holds the per-shape shading inputs every primitive
// constructor accepts: either a flat Colour or a Mapper supplies the
// diffuse response, Specular is always a flat colour (it is not
// texture-mapped), plus a transparency tint
// used by traversal-order compositing. Transparency nil (or full
// black) disables transparency traversal for the surface.
type Material struct {
	Diffuse      *colour.Colour
	Specular     *colour.Colour
	Transparency *colour.Colour
	Mapper       Mapper // optional; overrides Diffuse when non-nil.
}

// Mapper converts a Hit's object-space surface coordinates into a
// diffuse colour, the seam between a shape's geometry and the
// texture package. Kept here (rather than imported from texture) to
// avoid a shapes<->texture import cycle: texture imports shapes for
// the Hit type it maps from.
type Mapper interface {
	At(hit *Hit) *colour.Colour
}

// Hit is the result of a ray intersecting a shape, expressed first
// in object space (Point, Normal) and carrying the original
// world-space ray plus every other positive-t intersection along it,
// ordered by increasing T, so shading's transparency traversal can
// walk through a shape without re-casting.
type Hit struct {
	T      float64
	Point  *lin.V3 // object space.
	Normal *lin.V3 // object space, not yet normalized to world.
	Ray    *Ray    // original world-space ray.
	Shape  Shape
	Others []*Hit // remaining positive-t hits, sorted by T ascending.

	// U, V are the triangle's barycentric coordinates at the hit,
	// set by *Triangle's Intersect; texture.TriangleMapper reads
	// them directly as the surface's (u,v) per spec's mapping table.
	U, V float64

	// MatOverride, when non-nil, is the material to shade this hit
	// with instead of Shape.Material() — used by CappedCylinder and
	// CappedCone to give their end caps a different look than the
	// body without inventing a second Shape per cap.
	MatOverride *Material
}

// ShadeMaterial returns the material a hit should be shaded with:
// MatOverride if the shape set one, else the shape's own material.
func (h *Hit) ShadeMaterial() *Material {
	if h.MatOverride != nil {
		return h.MatOverride
	}
	return h.Shape.Material()
}

// WorldPoint returns the hit point in world space.
func (h *Hit) WorldPoint() *lin.V3 {
	return h.Ray.At(h.T)
}

// WorldNormal returns the hit normal carried to world space via the
// owning shape's Transform.
func (h *Hit) WorldNormal() *lin.V3 {
	return h.Shape.Transform().NormalToWorld(h.Normal)
}

// Shape is the interface every analytic primitive implements. A
// Shape always does its intersection math in its own object space;
// Transform (possibly identity) carries rays in and normals out.
type Shape interface {
	// Intersect tests a world-space ray against the shape, returning
	// the nearest positive-t hit (with every other positive-t hit
	// attached via Hit.Others) or ok=false if the ray misses.
	Intersect(ray *Ray) (hit *Hit, ok bool)

	// Transform returns the shape's placement in world space.
	Transform() *Transform

	// Material returns the shape's shading inputs.
	Material() *Material

	// WorldAABB returns the shape's world-space bounding box, or nil
	// for unbounded shapes, which the octree keeps in a separate list
	// tested against every ray.
	WorldAABB() *AABB
}

// sortHits sorts hits by ascending T and returns the nearest as the
// primary hit with the remainder attached as Others. It is the
// shared tail of every primitive's Intersect: each primitive solves
// for its own roots, builds one *Hit per positive root, and calls
// sortHits to assemble the result spec.md's transparency traversal
// expects.
func sortHits(hits []*Hit) (*Hit, bool) {
	if len(hits) == 0 {
		return nil, false
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	nearest := hits[0]
	nearest.Others = hits[1:]
	return nearest, true
}
