// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package colour provides a linear-light RGB colour type and the
// arithmetic the shading pipeline needs to combine, attenuate, and
// clamp colours. It mirrors math/lin's allocation-averse, mutator
// style vector API: colours are updated in place through pointer
// receivers rather than returned by value.
package colour

import "math"

// Colour is a linear RGB triple. Values are not clamped to [0,1]
// until output, so intermediate sums (reflections, additive lights)
// may exceed 1 without losing information.
type Colour struct {
	R, G, B float64
}

// Black, White and Grey are common reference colours. They must
// never be mutated.
var (
	Black = &Colour{0, 0, 0}
	White = &Colour{1, 1, 1}
	Grey  = &Colour{0.5, 0.5, 0.5}
)

// New returns a new colour with the given components.
func New(r, g, b float64) *Colour { return &Colour{r, g, b} }

// Set (=) assigns c's components from a. The updated c is returned.
func (c *Colour) Set(a *Colour) *Colour {
	c.R, c.G, c.B = a.R, a.G, a.B
	return c
}

// SetS (=) assigns c's components from the given scalars.
func (c *Colour) SetS(r, g, b float64) *Colour {
	c.R, c.G, c.B = r, g, b
	return c
}

// Add (+) sums a and b component-wise into c. c may be one of a or b.
func (c *Colour) Add(a, b *Colour) *Colour {
	c.R, c.G, c.B = a.R+b.R, a.G+b.G, a.B+b.B
	return c
}

// Mult (*) multiplies a and b component-wise into c (modulation).
// c may be one of a or b.
func (c *Colour) Mult(a, b *Colour) *Colour {
	c.R, c.G, c.B = a.R*b.R, a.G*b.G, a.B*b.B
	return c
}

// Scale (*=) multiplies a's components by scalar s into c.
func (c *Colour) Scale(a *Colour, s float64) *Colour {
	c.R, c.G, c.B = a.R*s, a.G*s, a.B*s
	return c
}

// Lerp updates c to be the linear interpolation between a and b by
// the given fraction (0 gives a, 1 gives b).
func (c *Colour) Lerp(a, b *Colour, fraction float64) *Colour {
	c.R = (b.R-a.R)*fraction + a.R
	c.G = (b.G-a.G)*fraction + a.G
	c.B = (b.B-a.B)*fraction + a.B
	return c
}

// AddScaled adds a scaled by s onto c in place: c += a*s.
func (c *Colour) AddScaled(a *Colour, s float64) *Colour {
	c.R += a.R * s
	c.G += a.G * s
	c.B += a.B * s
	return c
}

// Clamped returns c with each component clamped to [0,1], leaving c
// unchanged. Used only at the final output stage; the shading
// pipeline itself works in unclamped linear light.
func (c *Colour) Clamped() *Colour {
	return &Colour{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IsUnset reports whether every component is exactly zero. Shading
// treats such a specular or transparency colour, or shadow factor, as
// switching that term off; an all-zero colour and explicit black are
// the same value.
func (c *Colour) IsUnset() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// Luminance returns the perceptual brightness of c using Rec. 709
// coefficients.
func (c *Colour) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Gamma returns c with a gamma-encoding curve applied component-wise,
// leaving c unchanged. gamma is typically 1/2.2.
func (c *Colour) Gamma(gamma float64) *Colour {
	return &Colour{
		math.Pow(clamp01(c.R), gamma),
		math.Pow(clamp01(c.G), gamma),
		math.Pow(clamp01(c.B), gamma),
	}
}
