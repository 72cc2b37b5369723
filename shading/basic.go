// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package shading implements the recursive Whitted shading model:
// ambient + per-light diffuse with shadow sampling + mirror
// reflection + traversal-order transparency.
package shading

import (
	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

// defaultNormalOffset is the distance a shaded point is nudged off
// its surface before casting a reflection or shadow ray from it, to
// avoid the ray immediately re-hitting the surface it just left.
const defaultNormalOffset = 0.0001

// Intersector is the subset of scene.Scene the shading model needs:
// a single-nearest-hit ray test, with the full chain of subsequent
// hits attached for shadow and transparency traversal. Declared here
// rather than imported from scene so shading does not depend on
// scene; camera passes the scene in when it shades a primary hit.
type Intersector interface {
	TestIntersect(ray *shapes.Ray, exclude shapes.Shape) (*shapes.Hit, bool)
}

// Options tunes which terms of the model run, matching the knobs the
// source system exposed per lighting-model instance.
type Options struct {
	NoShadows     bool
	NoDiffuse     bool
	NoReflections bool
	// NormalOffset overrides the default surface-bias epsilon when
	// non-zero.
	NormalOffset float64
}

// Basic is the lighting model every scene is rendered with: ambient
// plus the per-light/reflection/transparency terms of Shade.
type Basic struct {
	Ambient    *colour.Colour
	MaxReflect int
	Options    Options
}

// NewBasic creates a Basic model. ambient defaults to black and
// maxReflect to 5 when given as nil/<=0.
func NewBasic(ambient *colour.Colour, maxReflect int) *Basic {
	if ambient == nil {
		ambient = colour.New(0, 0, 0)
	}
	if maxReflect <= 0 {
		maxReflect = 5
	}
	return &Basic{Ambient: ambient, MaxReflect: maxReflect}
}

// Shade computes the colour seen along hit.Ray at hit, recursing into
// reflection and transparency as the model's budget and the
// surface's material allow. scn resolves further rays (reflection,
// shadow, next-hit-in-chain); lights is the scene's full light set.
// budget is the remaining reflection recursion depth for this call
// chain — camera.View passes the scene's GetMaxReflections() for the
// primary hit.
func (b *Basic) Shade(scn Intersector, lights []light.Light, hit *shapes.Hit, budget int) *colour.Colour {
	normal := hit.WorldNormal()
	point := hit.WorldPoint()

	epsilon := defaultNormalOffset
	if b.Options.NormalOffset != 0 {
		epsilon = b.Options.NormalOffset
	}
	shift := epsilon * sign(hit.Ray.Dir.Dot(normal))
	shiftedPoint := lin.NewV3().Scale(normal, shift)
	shiftedPoint.Add(shiftedPoint, point)

	mat := hit.ShadeMaterial()
	diffuseColour := b.diffuseColour(hit, mat)

	end := colour.New(0, 0, 0).Set(b.Ambient)

	if !b.Options.NoReflections && budget > 0 && mat.Specular != nil && !mat.Specular.IsUnset() {
		reflectDir := lin.NewV3().Reflect(hit.Ray.Dir, normal)
		reflectRay := shapes.NewRay(shiftedPoint, reflectDir)
		if reflectHit, ok := scn.TestIntersect(reflectRay, nil); ok {
			reflectColour := b.Shade(scn, lights, reflectHit, budget-1)
			tinted := colour.New(0, 0, 0).Mult(reflectColour, mat.Specular)
			end.Add(end, tinted)
		}
	}

	accumulatedDiffuse := colour.New(0, 0, 0)
	for _, lgt := range lights {
		info := lgt.CalcInfo(point, shiftedPoint)
		if !info.IsInside {
			continue
		}

		shadowFactor := b.shadowFactor(scn, hit.Shape, shiftedPoint, info.ShadowVectors)
		if shadowFactor.IsUnset() {
			continue
		}

		var contribution *colour.Colour
		if b.Options.NoDiffuse {
			contribution = colour.New(0, 0, 0).Scale(diffuseColour, 0.5)
		} else {
			costh := info.LightDirection.Unit().Dot(normal)
			if costh < 0 {
				costh = 0
			}
			contribution = colour.New(0, 0, 0).Mult(diffuseColour, lgt.Colour())
			contribution.Scale(contribution, costh*info.Intensity)
			contribution.Mult(contribution, shadowFactor)
		}
		accumulatedDiffuse.Add(accumulatedDiffuse, contribution)
	}
	end.Add(end, accumulatedDiffuse)

	if len(hit.Others) > 0 && mat.Transparency != nil && !mat.Transparency.IsUnset() {
		next := hit.Others[0]
		next.Others = hit.Others[1:]
		nextColour := b.Shade(scn, lights, next, budget)
		tinted := colour.New(0, 0, 0).Mult(nextColour, mat.Transparency)
		end.Add(end, tinted)
	}

	return clampNonNegative(end)
}

// clampNonNegative zeroes any negative component of c in place and
// returns it. Step 7 of the model only guards against negative
// light (which can arise from the per-light diffuse term when a
// surface's own diffuse colour carries a negative component from a
// texture or vertex-colour blend); it deliberately does not clamp to
// 1, since additive reflections/lights legitimately exceed full
// brightness until the sink clamps each stored pixel to [0,1].
func clampNonNegative(c *colour.Colour) *colour.Colour {
	if c.R < 0 {
		c.R = 0
	}
	if c.G < 0 {
		c.G = 0
	}
	if c.B < 0 {
		c.B = 0
	}
	return c
}

// diffuseColour reads the surface's diffuse colour at hit, through
// its Mapper if one is set (textures), else the material's flat
// Diffuse colour.
func (b *Basic) diffuseColour(hit *shapes.Hit, mat *shapes.Material) *colour.Colour {
	if mat.Mapper != nil {
		return mat.Mapper.At(hit)
	}
	if mat.Diffuse != nil {
		return mat.Diffuse
	}
	return colour.Black
}

// shadowFactor casts one shadow ray per sample vector from
// shiftedPoint, accumulates each sample's transparency-attenuated
// occlusion factor, and averages the samples. The zero colour means
// fully shadowed; (1,1,1) means fully lit.
func (b *Basic) shadowFactor(scn Intersector, self shapes.Shape, shiftedPoint *lin.V3, vectors []*lin.V3) *colour.Colour {
	total := colour.New(0, 0, 0)
	if b.Options.NoShadows || len(vectors) == 0 {
		return colour.New(1, 1, 1)
	}
	for _, v := range vectors {
		total.Add(total, sampleShadowFactor(scn, self, shiftedPoint, v))
	}
	total.Scale(total, 1.0/float64(len(vectors)))
	return total
}

// sampleShadowFactor walks the chain of hits between shiftedPoint and
// the light sample (t in (0,1] along ray direction v), multiplying
// the running factor by each occluder's transparency tint in turn,
// stopping early once the factor is fully black.
func sampleShadowFactor(scn Intersector, self shapes.Shape, shiftedPoint, v *lin.V3) *colour.Colour {
	factor := colour.New(1, 1, 1)
	ray := shapes.NewRay(shiftedPoint, v)
	ray.Shadow = true

	hit, ok := scn.TestIntersect(ray, self)
	for ok && hit.T <= 1 {
		mat := hit.ShadeMaterial()
		if mat.Transparency != nil {
			factor.Mult(factor, mat.Transparency)
		} else {
			factor.SetS(0, 0, 0)
		}
		if factor.R <= 0 && factor.G <= 0 && factor.B <= 0 {
			break
		}
		if len(hit.Others) == 0 {
			break
		}
		hit, ok = hit.Others[0], true
		hit.Others = hit.Others[1:]
	}
	return factor
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
