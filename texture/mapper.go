// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"math"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/shapes"
)

// mapped is a shapes.Mapper that converts a Hit's object-space point
// into a (u,v) pair with the given function, then samples tex.
// Exported per-shape constructors below are just mapped values with
// a specific toUV function, so a shape's Material.Mapper field can
// hold one directly.
type mapped struct {
	toUV func(hit *shapes.Hit) (u, v float64)
	tex  Texture
}

func (m mapped) At(hit *shapes.Hit) *colour.Colour {
	u, v := m.toUV(hit)
	return m.tex.Colour(u, v)
}

// SphereMapper wraps tex with the sphere UV formula: u from the
// longitude angle around Y, v from the latitude.
func SphereMapper(tex Texture) shapes.Mapper {
	return mapped{tex: tex, toUV: func(hit *shapes.Hit) (float64, float64) {
		p := hit.Point
		u := (math.Atan2(p.Z, p.X) + math.Pi) / (2 * math.Pi)
		v := (math.Asin(clampAcos1(p.Y)) + math.Pi/2) / math.Pi
		return u, v
	}}
}

func clampAcos1(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// CylinderMapper wraps tex with the same angular u as a sphere and a
// v that runs linearly along the cylinder's height.
func CylinderMapper(tex Texture) shapes.Mapper {
	return mapped{tex: tex, toUV: func(hit *shapes.Hit) (float64, float64) {
		p := hit.Point
		u := (math.Atan2(p.Z, p.X) + math.Pi) / (2 * math.Pi)
		v := p.Y + 0.5
		return u, v
	}}
}

// ConeMapper wraps tex with the cylinder's angular u and a v that
// runs linearly between the cone's two y bounds.
func ConeMapper(tex Texture, yTop, yBottom float64) shapes.Mapper {
	return mapped{tex: tex, toUV: func(hit *shapes.Hit) (float64, float64) {
		p := hit.Point
		u := (math.Atan2(p.Z, p.X) + math.Pi) / (2 * math.Pi)
		v := (p.Y - yTop) / (yBottom - yTop)
		return u, v
	}}
}

// DiscMapper wraps tex treating the disc's object-space x,y in
// [-1,1] as a simple "cookie" UV in [0,1].
func DiscMapper(tex Texture) shapes.Mapper {
	return mapped{tex: tex, toUV: func(hit *shapes.Hit) (float64, float64) {
		p := hit.Point
		return (p.X + 1) / 2, (p.Y + 1) / 2
	}}
}

// RectangleMapper wraps tex, normalizing object-space x,y against
// the rectangle's own left/top/width/height.
func RectangleMapper(tex Texture, left, top, width, height float64) shapes.Mapper {
	return mapped{tex: tex, toUV: func(hit *shapes.Hit) (float64, float64) {
		p := hit.Point
		return (p.X - left) / width, (p.Y - top) / height
	}}
}

// TriangleMapper wraps tex using the hit's own barycentric (u,v) —
// Moller-Trumbore already solves for exactly the pair spec's mapping
// table calls for, so no extra projection is needed.
func TriangleMapper(tex Texture) shapes.Mapper {
	return mapped{tex: tex, toUV: func(hit *shapes.Hit) (float64, float64) {
		return hit.U, hit.V
	}}
}
