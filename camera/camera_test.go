// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/shading"
	"github.com/galvanized/raytrace/shapes"
)

type fakeOutput struct {
	rect   Rect
	pixels map[[2]int]*colour.Colour
}

func newFakeOutput() *fakeOutput {
	return &fakeOutput{pixels: map[[2]int]*colour.Colour{}}
}

func (f *fakeOutput) SetRectangle(r Rect) { f.rect = r }
func (f *fakeOutput) SetPixel(x, y int, c *colour.Colour) {
	f.pixels[[2]int{x, y}] = c
}

func sphereAt(x, y, z, radius float64) *shapes.Sphere {
	return shapes.NewSphere(radius, shapes.New(shapes.Translate(x, y, z)), &shapes.Material{Diffuse: colour.White})
}

func TestPrimaryRayCenteredFormula(t *testing.T) {
	v := NewView(-10, Rect{0, 0, 100, 100}, ViewRect{-5, -5, 5, 5}, nil, nil)
	ray := v.primaryRay(2, 3)
	if !ray.Origin.Aeq(lin.NewV3S(0, 0, -10)) {
		t.Errorf("origin = %+v, want eye", ray.Origin)
	}
	want := lin.NewV3S(2-0, 3-0, 10)
	if !ray.Dir.Aeq(want) {
		t.Errorf("dir = %+v, want %+v", ray.Dir, want)
	}
}

func TestNewViewLookAtRejectsDegenerateEyeLookAt(t *testing.T) {
	p := lin.NewV3S(0, 0, 0)
	if _, err := NewViewLookAt(p, p, 10, 5, Rect{0, 0, 100, 100}, 1, 0, nil, nil); err == nil {
		t.Fatal("expected an error for eye == lookAt")
	}
}

func TestNewViewLookAtOnAxisPointsTowardTarget(t *testing.T) {
	eye := lin.NewV3S(0, 0, -20)
	lookAt := lin.NewV3S(0, 0, 0)
	v, err := NewViewLookAt(eye, lookAt, 10, 5, Rect{0, 0, 100, 100}, 1, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ray := v.primaryRay(0, 0)
	if !ray.Origin.Aeq(eye) {
		t.Errorf("origin = %+v, want eye %+v", ray.Origin, eye)
	}
	dir := lin.NewV3().Set(ray.Dir).Unit()
	want := lin.NewV3().Sub(lookAt, eye).Unit()
	if !dir.Aeq(want) {
		t.Errorf("on-axis direction = %+v, want %+v (toward lookAt)", dir, want)
	}
}

func TestRenderNoAAWritesEveryPhysicalPixel(t *testing.T) {
	scn := scene.New(scene.DefaultConfig())
	scn.AddShape(sphereAt(0, 0, 0, 100))

	out := newFakeOutput()
	lighting := shading.NewBasic(colour.New(0.2, 0.2, 0.2), 5)
	v := NewView(-10, Rect{0, 0, 4, 4}, ViewRect{-5, -5, 5, 5}, lighting, out)
	if _, err := scn.AddView(v, "cam"); err != nil {
		t.Fatal(err)
	}

	if _, err := scn.Render("cam"); err != nil {
		t.Fatal(err)
	}
	if got := len(out.pixels); got != 16 {
		t.Errorf("len(pixels) = %d, want 16", got)
	}
}

func TestColourDeltaIsPerChannelMax(t *testing.T) {
	a := colour.New(0.5, 0.5, 0.5)
	b := colour.New(0.7, 0.7, 0.5) // each channel differs by 0.2, summed would be 0.4.
	if got := colourDelta(a, b); !lin.Aeq(got, 0.2) {
		t.Errorf("colourDelta = %v, want 0.2 (the largest single-channel delta)", got)
	}
}

func TestGridAAConvergesOnConstantColour(t *testing.T) {
	scn := scene.New(scene.DefaultConfig())
	scn.AddShape(sphereAt(0, 0, 0, 1000))

	out := newFakeOutput()
	lighting := shading.NewBasic(colour.New(0.25, 0.5, 0.75), 5)
	v := NewView(-10, Rect{0, 0, 1, 1}, ViewRect{-1, -1, 1, 1}, lighting, out)
	v.Antialias = AntialiasSettings{Mode: GridAA, X: 3, Y: 3}
	if _, err := scn.AddView(v, "cam"); err != nil {
		t.Fatal(err)
	}

	if _, err := scn.Render("cam"); err != nil {
		t.Fatal(err)
	}
	clr := out.pixels[[2]int{0, 0}]
	if !lin.Aeq(clr.R, 0.25) || !lin.Aeq(clr.G, 0.5) || !lin.Aeq(clr.B, 0.75) {
		t.Errorf("grid AA over a constant-colour region = %+v, want (0.25,0.5,0.75)", clr)
	}
}
