// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import "github.com/galvanized/raytrace/colour"

// Tiled repeats an inner Texture across the unit square URepeat by
// VRepeat times, remapping each tile back to [0,1] before delegating.
type Tiled struct {
	Inner            Texture
	URepeat, VRepeat float64
}

func (t Tiled) Colour(u, v float64) *colour.Colour {
	uSize, vSize := 1.0/t.URepeat, 1.0/t.VRepeat
	up := (u - float64(int(u/uSize))*uSize) / uSize
	vp := (v - float64(int(v/vSize))*vSize) / vSize
	return t.Inner.Colour(up, vp)
}

// Flip mirrors an inner Texture's u and/or v coordinate before
// delegating.
type Flip struct {
	Inner      Texture
	FlipU, FlipV bool
}

func (f Flip) Colour(u, v float64) *colour.Colour {
	if f.FlipU {
		u = 1.0 - u
	}
	if f.FlipV {
		v = 1.0 - v
	}
	return f.Inner.Colour(u, v)
}

// Rotate90 rotates an inner Texture's coordinate frame a quarter
// turn, left or right.
type Rotate90 struct {
	Inner Texture
	Left  bool
}

func (r Rotate90) Colour(u, v float64) *colour.Colour {
	var nu, nv float64
	if r.Left {
		nv = 1.0 - u
		nu = v
	} else {
		nv = u
		nu = 1.0 - v
	}
	return r.Inner.Colour(nu, nv)
}

// MosaicTile places one inner texture within a uv sub-rectangle of
// the parent Mosaic, remapping the sub-rectangle back to [0,1] for
// the inner texture.
type MosaicTile struct {
	Inner                Texture
	UMin, VMin           float64
	UScale, VScale       float64
}

// Mosaic lays tiles out in layers (layer 0 drawn on top); the first
// layer (in ascending layer-index order) whose tile contains the uv
// coordinate wins, falling back to Default when no tile matches.
type Mosaic struct {
	Layers  [][]MosaicTile
	Default *colour.Colour
}

func (m Mosaic) Colour(u, v float64) *colour.Colour {
	for _, layer := range m.Layers {
		for _, tile := range layer {
			uMax, vMax := tile.UMin+tile.UScale, tile.VMin+tile.VScale
			if u >= tile.UMin && u <= uMax && v >= tile.VMin && v <= vMax {
				return tile.Inner.Colour((u-tile.UMin)/tile.UScale, (v-tile.VMin)/tile.VScale)
			}
		}
	}
	return m.Default
}
