// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package texture provides the Texture variants and the per-shape
// Mapper functions that convert a shapes.Hit into a (u,v) pair a
// Texture can turn into a colour. A shapes.Material's Mapper field
// is a shapes.Mapper, which the mappers here return, so the shading
// pipeline never imports this
// package directly — it only calls back through the interface shapes
// already knows about.
package texture

import "github.com/galvanized/raytrace/colour"

// Texture converts a (u,v) surface coordinate, each in [0,1], into a
// colour. Every variant here is a pure function of its inputs; none
// hold mutable render state, so a single Texture is safe to share
// across the worker pool's goroutines.
type Texture interface {
	Colour(u, v float64) *colour.Colour
}

// Solid is a flat, unmapped colour — the trivial Texture, returning C
// for every (u,v). A material with a flat Diffuse and no Mapper is
// shaded from Diffuse directly, without a Solid.
type Solid struct{ C *colour.Colour }

func (s Solid) Colour(u, v float64) *colour.Colour { return s.C }

// clamp01 matches the source system's uv clamp: out-of-range
// coordinates saturate at the nearest edge rather than wrapping,
// except where a specific texture (Tiled) deliberately wraps.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
