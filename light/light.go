// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package light provides the Light variants the shading model queries
// per intersection: Point, Spotlight, and Conical. Each answers
// CalcInfo with whether the shaded point falls inside the light's
// region of effect, one or more shadow-ray directions to sample
// positions on the light, a normalized light direction, and an
// intensity scalar.
package light

import (
	"math"
	"math/rand"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

// CalcInfo is a light's answer at one shaded point: whether the point
// is lit at all, the shadow-ray directions to sample, the direction
// back to the light (for diffuse cos-theta), and an intensity factor.
type CalcInfo struct {
	IsInside       bool
	ShadowVectors  []*lin.V3
	LightDirection *lin.V3
	Intensity      float64
}

// Light is the interface the lighting model queries for every light
// in a scene.
type Light interface {
	// CalcInfo evaluates the light at a shaded surface point. point
	// is the unshifted world-space hit; shiftedPoint is the same
	// point nudged off the surface along its normal, used as the
	// shadow ray's origin.
	CalcInfo(point, shiftedPoint *lin.V3) *CalcInfo
	Colour() *colour.Colour
}

// Point is an omnidirectional light at a fixed world position.
type Point struct {
	Position *lin.V3
	C        *colour.Colour
}

// NewPoint creates a point light at position with the given colour.
func NewPoint(position *lin.V3, c *colour.Colour) *Point {
	return &Point{Position: position, C: c}
}

func (p *Point) Colour() *colour.Colour { return p.C }

func (p *Point) CalcInfo(point, shiftedPoint *lin.V3) *CalcInfo {
	shadow := lin.NewV3().Sub(p.Position, shiftedPoint)
	dir := lin.NewV3().Sub(p.Position, point).Unit()
	return &CalcInfo{
		IsInside:       true,
		ShadowVectors:  []*lin.V3{shadow},
		LightDirection: dir,
		Intensity:      1,
	}
}

// spotlightCutoffDeg is the half-angle, measured from the cylinder's
// axis, beyond which the cone falloff reaches zero.
const spotlightCutoffDeg = 26.57
const spotlightCutoffRad = spotlightCutoffDeg * math.Pi / 180

var spotlightCutoffCos = math.Cos(spotlightCutoffRad)

// Spotlight is a directional light whose region of effect is a unit
// cylinder (radius 1, y in [0, infinity) in light space) intersected
// with an outer cone falloff, Transform placing that region in world
// space. Soft shadows come from sampling N random points on the
// cylinder's base disc.
type Spotlight struct {
	Trans   *shapes.Transform
	C       *colour.Colour
	Samples int
}

// NewSpotlight creates a spotlight placed by trans with the given
// colour and shadow-sample count (10 if samples <= 0).
func NewSpotlight(trans *shapes.Transform, c *colour.Colour, samples int) *Spotlight {
	if samples <= 0 {
		samples = 10
	}
	return &Spotlight{Trans: trans, C: c, Samples: samples}
}

func (s *Spotlight) Colour() *colour.Colour { return s.C }

func (s *Spotlight) CalcInfo(point, shiftedPoint *lin.V3) *CalcInfo {
	lp := s.Trans.ToObjectPoint(point)
	if lp.Y < 0 {
		return &CalcInfo{IsInside: false}
	}

	r := math.Sqrt(lp.X*lp.X + lp.Z*lp.Z)
	cosTest := lp.Y / math.Sqrt(lp.X*lp.X+lp.Y*lp.Y+lp.Z*lp.Z)
	if r > 1 || cosTest < spotlightCutoffCos {
		return &CalcInfo{IsInside: false}
	}
	intensity := math.Pow((cosTest-spotlightCutoffCos)/(1-spotlightCutoffCos), 3)

	shadowVectors := make([]*lin.V3, s.Samples)
	lightDirection := &lin.V3{}
	for i := 0; i < s.Samples; i++ {
		rr := rand.Float64()
		angle := rand.Float64() * 2 * math.Pi
		sample := lin.NewV3S(math.Sin(angle)*rr, 0, math.Cos(angle)*rr)
		worldSample := s.Trans.PointToWorld(sample)
		sv := lin.NewV3().Sub(worldSample, shiftedPoint)
		shadowVectors[i] = sv
		lightDirection.Add(lightDirection, sv)
	}
	lightDirection.Scale(lightDirection, 1.0/float64(s.Samples)).Unit()

	return &CalcInfo{
		IsInside:       true,
		ShadowVectors:  shadowVectors,
		LightDirection: lightDirection,
		Intensity:      intensity,
	}
}

// Conical is a simpler directional light: an infinite (or length-
// capped) cone in light space, no soft cone falloff and a single
// shadow vector aimed at the apex.
type Conical struct {
	Trans  *shapes.Transform
	C      *colour.Colour
	Length float64 // <= 0 means unbounded.
}

// NewConical creates a conical light placed by trans. length <= 0
// leaves the cone unbounded along its axis.
func NewConical(trans *shapes.Transform, c *colour.Colour, length float64) *Conical {
	return &Conical{Trans: trans, C: c, Length: length}
}

func (c *Conical) Colour() *colour.Colour { return c.C }

func (c *Conical) CalcInfo(point, shiftedPoint *lin.V3) *CalcInfo {
	lp := c.Trans.ToObjectPoint(point)
	if lp.Y <= 0 {
		return &CalcInfo{IsInside: false}
	}
	if c.Length > 0 && lp.Y > c.Length {
		return &CalcInfo{IsInside: false}
	}
	r := math.Sqrt(lp.X*lp.X+lp.Z*lp.Z) / lp.Y
	if r > 1 {
		return &CalcInfo{IsInside: false}
	}

	apex := c.Trans.PointToWorld(&lin.V3{})
	shadow := lin.NewV3().Sub(apex, shiftedPoint)
	return &CalcInfo{
		IsInside:       true,
		ShadowVectors:  []*lin.V3{shadow},
		LightDirection: lin.NewV3().Set(shadow).Unit(),
		Intensity:      1,
	}
}
