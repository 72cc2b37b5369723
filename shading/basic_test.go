// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shading

import (
	"testing"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

// fakeIntersector lets tests script the handful of ray tests Shade
// issues (reflection, shadow, next-chain) without a real scene/octree.
type fakeIntersector struct {
	hit *shapes.Hit
	ok  bool
}

func (f *fakeIntersector) TestIntersect(ray *shapes.Ray, exclude shapes.Shape) (*shapes.Hit, bool) {
	return f.hit, f.ok
}

func litSphere(diffuse *colour.Colour, transparency *colour.Colour) *shapes.Sphere {
	mat := &shapes.Material{Diffuse: diffuse, Transparency: transparency}
	return shapes.NewSphere(1, shapes.New(), mat)
}

func simpleHit(shape shapes.Shape, rayOrigin, rayDir *lin.V3, normal *lin.V3) *shapes.Hit {
	ray := shapes.NewRay(rayOrigin, rayDir)
	return &shapes.Hit{T: 1, Point: lin.NewV3S(0, 0, -1), Normal: normal, Ray: ray, Shape: shape}
}

func TestShadeAmbientOnlyWithNoLights(t *testing.T) {
	b := NewBasic(colour.New(0.1, 0.1, 0.1), 5)
	s := litSphere(colour.White, nil)
	hit := simpleHit(s, lin.NewV3S(0, 0, -5), lin.NewV3S(0, 0, 1), lin.NewV3S(0, 0, -1))

	result := b.Shade(&fakeIntersector{}, nil, hit, b.MaxReflect)
	if !lin.Aeq(result.R, 0.1) || !lin.Aeq(result.G, 0.1) || !lin.Aeq(result.B, 0.1) {
		t.Errorf("expected ambient-only result, got %+v", result)
	}
}

func TestShadeUnoccludedPointLightAddsDiffuse(t *testing.T) {
	b := NewBasic(colour.New(0, 0, 0), 5)
	s := litSphere(colour.White, nil)
	hit := simpleHit(s, lin.NewV3S(0, 0, -5), lin.NewV3S(0, 0, 1), lin.NewV3S(0, 0, -1))

	pointLight := light.NewPoint(lin.NewV3S(0, 0, -10), colour.White)
	result := b.Shade(&fakeIntersector{ok: false}, []light.Light{pointLight}, hit, b.MaxReflect)
	if result.R <= 0 {
		t.Errorf("expected a positive diffuse contribution, got %+v", result)
	}
}

func TestShadeShadowedLightContributesNothing(t *testing.T) {
	b := NewBasic(colour.New(0, 0, 0), 5)
	s := litSphere(colour.White, nil)
	hit := simpleHit(s, lin.NewV3S(0, 0, -5), lin.NewV3S(0, 0, 1), lin.NewV3S(0, 0, -1))

	occluder := litSphere(colour.Black, colour.Black)
	occluderHit := &shapes.Hit{T: 0.5, Shape: occluder}
	pointLight := light.NewPoint(lin.NewV3S(0, 0, -10), colour.White)

	result := b.Shade(&fakeIntersector{hit: occluderHit, ok: true}, []light.Light{pointLight}, hit, b.MaxReflect)
	if result.R != 0 || result.G != 0 || result.B != 0 {
		t.Errorf("expected a fully shadowed point to contribute nothing, got %+v", result)
	}
}

func TestShadeTransparencyBlendsNextHit(t *testing.T) {
	b := NewBasic(colour.New(0, 0, 0), 5)
	front := litSphere(colour.New(1, 0, 0), colour.New(0.5, 0.5, 0.5))
	back := litSphere(colour.New(0, 0, 1), nil)

	backHit := simpleHit(back, lin.NewV3S(0, 0, -5), lin.NewV3S(0, 0, 1), lin.NewV3S(0, 0, -1))
	hit := simpleHit(front, lin.NewV3S(0, 0, -5), lin.NewV3S(0, 0, 1), lin.NewV3S(0, 0, -1))
	hit.Others = []*shapes.Hit{backHit}

	pointLight := light.NewPoint(lin.NewV3S(0, 0, -10), colour.White)
	result := b.Shade(&fakeIntersector{ok: false}, []light.Light{pointLight}, hit, b.MaxReflect)
	if result.B <= 0 {
		t.Errorf("expected the back surface's blue to blend through, got %+v", result)
	}
}
