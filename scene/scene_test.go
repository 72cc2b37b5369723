// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

func sphereAt(x, y, z, radius float64) *shapes.Sphere {
	return shapes.NewSphere(radius, shapes.New(shapes.Translate(x, y, z)), &shapes.Material{})
}

func TestAddShapeAutoNames(t *testing.T) {
	s := New(DefaultConfig())
	n1, err := s.AddShape(sphereAt(0, 0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	n2, err := s.AddShape(sphereAt(5, 0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if n1 == n2 {
		t.Fatalf("expected distinct auto names, got %q twice", n1)
	}
}

func TestAddShapeExplicitDuplicateErrors(t *testing.T) {
	s := New(DefaultConfig())
	if _, err := s.AddShape(sphereAt(0, 0, 0, 1), "centre"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddShape(sphereAt(1, 0, 0, 1), "centre"); err == nil {
		t.Error("expected a duplicate explicit name to error")
	}
}

func TestTestIntersectNearest(t *testing.T) {
	s := New(DefaultConfig())
	s.AddShape(sphereAt(0, 0, -5, 1))
	s.AddShape(sphereAt(0, 0, 5, 1))

	ray := shapes.NewRay(lin.NewV3S(0, 0, -10), lin.NewV3S(0, 0, 1))
	hit, ok := s.TestIntersect(ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := 4.0; !lin.Aeq(hit.T, want) {
		t.Errorf("T = %v, want %v", hit.T, want)
	}
}

func TestTestIntersectExcludesShape(t *testing.T) {
	s := New(DefaultConfig())
	near := sphereAt(0, 0, -5, 1)
	s.AddShape(near)
	s.AddShape(sphereAt(0, 0, 5, 1))

	ray := shapes.NewRay(lin.NewV3S(0, 0, -10), lin.NewV3S(0, 0, 1))
	hit, ok := s.TestIntersect(ray, near)
	if !ok {
		t.Fatal("expected a hit on the far sphere")
	}
	if want := 14.0; !lin.Aeq(hit.T, want) {
		t.Errorf("T = %v, want %v", hit.T, want)
	}
}

func TestRenderUsesOctreeWhenOverThreshold(t *testing.T) {
	cfg := Config{UseOctree: true, OctreeSplitThreshold: 2, MaxReflections: 5}
	s := New(cfg)
	for i := 0; i < 5; i++ {
		s.AddShape(sphereAt(float64(i)*3, 0, 0, 1))
	}
	s.ensureIndex()
	if s.index == nil {
		t.Error("expected the octree to be built once shape count reached the threshold")
	}
}

type fakeLight struct{}

func (fakeLight) CalcInfo(point, shiftedPoint *lin.V3) *light.CalcInfo {
	return &light.CalcInfo{IsInside: true}
}
func (fakeLight) Colour() *colour.Colour { return colour.White }

func TestLightsReturnsAllAdded(t *testing.T) {
	s := New(DefaultConfig())
	s.AddLight(fakeLight{})
	s.AddLight(fakeLight{})
	if got := len(s.Lights()); got != 2 {
		t.Errorf("len(Lights()) = %d, want 2", got)
	}
}
