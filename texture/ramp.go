// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"math"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
)

const point707 = 0.70710678118654752440

// CircularRamp blends through Colours concentric rings outward from
// the uv centre (0.5, 0.5), normalized so the farthest corner of the
// unit square maps to the last colour.
type CircularRamp struct{ Colours []*colour.Colour }

func (r CircularRamp) Colour(u, v float64) *colour.Colour {
	n := len(r.Colours)
	if n == 0 {
		return colour.Black
	}
	if n == 1 {
		return r.Colours[0]
	}
	dx, dy := u-0.5, v-0.5
	dist := math.Sqrt(dx*dx+dy*dy) / point707
	step := 1.0 / float64(n-1)
	i := int(dist / step)
	if i >= n-1 {
		i = n - 2
	}
	frac := dist/step - float64(i)
	c := &colour.Colour{}
	return c.Lerp(r.Colours[i], r.Colours[i+1], frac)
}

// ColourBands divides u into N equal-width bands, each a flat
// colour with no blending between neighbours.
type ColourBands struct{ Colours []*colour.Colour }

func (b ColourBands) Colour(u, v float64) *colour.Colour {
	n := len(b.Colours)
	if n == 0 {
		return colour.Black
	}
	i := int(clamp01(u) * float64(n))
	if i >= n {
		i = n - 1
	}
	return b.Colours[i]
}

// ColourRamp linearly blends between N colour stops spaced evenly
// along u, unlike ColourBands which has hard edges between stops.
type ColourRamp struct{ Colours []*colour.Colour }

func (r ColourRamp) Colour(u, v float64) *colour.Colour {
	n := len(r.Colours)
	if n == 0 {
		return colour.Black
	}
	if n == 1 {
		return r.Colours[0]
	}
	step := 1.0 / float64(n-1)
	i := int(clamp01(u) / step)
	if i >= n-1 {
		i = n - 2
	}
	frac := clamp01(u)/step - float64(i)
	c := &colour.Colour{}
	return c.Lerp(r.Colours[i], r.Colours[i+1], frac)
}

// BandedSpiral winds colour bands outward from the centre in a
// spiral of the given number of twists, the way a barber pole's
// stripe advances around the pole as it rises.
type BandedSpiral struct {
	Colours []*colour.Colour
	Twists  int
}

func (s BandedSpiral) Colour(u, v float64) *colour.Colour {
	n := len(s.Colours)
	if n == 0 {
		return colour.Black
	}
	twists := s.Twists
	if twists <= 0 {
		twists = 1
	}
	x, y := u*2-1, v*2-1
	dist := math.Sqrt(x*x + y*y)

	xOnCirc := 0.0
	if dist != 0 {
		xOnCirc = x / dist
	}
	angle := lin.Deg(math.Acos(clampAcos(xOnCirc)))
	if y < 0 {
		angle = 90 + (90 - angle)
	} else {
		angle = 180 + angle
	}

	dist *= point707
	twistWidth := 1.0 / float64(twists)
	bandWidth := twistWidth / float64(n)

	twist := math.Trunc(dist / twistWidth)
	if twist > float64(twists-1) {
		twist = float64(twists - 1)
	}
	posInTwist := dist - twist*twistWidth
	posInTwist -= (angle / 360.0) * twistWidth

	band := posInTwist / bandWidth
	if band < 0 {
		band += float64(n)
	}
	i := int(math.Trunc(band))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return s.Colours[i]
}

func clampAcos(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

