// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package octree

import (
	"testing"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

func sphereAt(x, y, z, radius float64) *shapes.Sphere {
	t := shapes.New(shapes.Translate(x, y, z))
	return shapes.NewSphere(radius, t, &shapes.Material{})
}

func TestIntersectFindsNearest(t *testing.T) {
	tree := New(shapes.NewAABB(-20, -20, -20, 20, 20, 20), 2, 0)
	tree.Insert(sphereAt(0, 0, -5, 1))
	tree.Insert(sphereAt(0, 0, 5, 1))
	tree.Insert(sphereAt(10, 10, 10, 1))

	ray := shapes.NewRay(lin.NewV3S(0, 0, -10), lin.NewV3S(0, 0, 1))
	hit, ok := tree.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := 4.0; !lin.Aeq(hit.T, want) {
		t.Errorf("T = %v, want %v", hit.T, want)
	}
}

func TestIntersectMissesEmptyRegion(t *testing.T) {
	tree := New(shapes.NewAABB(-20, -20, -20, 20, 20, 20), 2, 0)
	tree.Insert(sphereAt(5, 5, 5, 1))

	ray := shapes.NewRay(lin.NewV3S(0, 0, -10), lin.NewV3S(0, 0, 1))
	if _, ok := tree.Intersect(ray); ok {
		t.Error("expected no hit")
	}
}

func TestSplitRoutesBeyondThreshold(t *testing.T) {
	tree := New(shapes.NewAABB(-20, -20, -20, 20, 20, 20), 2, 0)
	for i := 0; i < 20; i++ {
		x := float64(i%4) * 3
		y := float64((i / 4) % 4) * 3
		tree.Insert(sphereAt(x, y, 0, 0.5))
	}
	if tree.root.children == nil {
		t.Fatal("expected root to have split into branches")
	}

	ray := shapes.NewRay(lin.NewV3S(0, 0, -10), lin.NewV3S(0, 0, 1))
	if _, ok := tree.Intersect(ray); !ok {
		t.Error("expected a hit on the shape at the origin")
	}
}

// unboundedShape is a minimal shapes.Shape stand-in for a primitive
// with no finite extent (an infinite plane, say); none of the
// current analytic primitives are themselves unbounded, so this
// fake exercises the always-tested path directly.
type unboundedShape struct{ hit *shapes.Hit }

func (u unboundedShape) Intersect(ray *shapes.Ray) (*shapes.Hit, bool) { return u.hit, u.hit != nil }
func (u unboundedShape) Transform() *shapes.Transform                 { return shapes.New() }
func (u unboundedShape) Material() *shapes.Material                   { return &shapes.Material{} }
func (u unboundedShape) WorldAABB() *shapes.AABB                      { return nil }

func TestUnboundedShapeAlwaysTested(t *testing.T) {
	tree := New(shapes.NewAABB(-20, -20, -20, 20, 20, 20), 2, 0)
	tree.Insert(unboundedShape{})
	if len(tree.unbounded) != 1 {
		t.Fatalf("expected the unbounded shape to bypass the spatial nodes, got %d unbounded", len(tree.unbounded))
	}

	ray := shapes.NewRay(lin.NewV3S(0, 0, -10), lin.NewV3S(0, 0, 1))
	want := &shapes.Hit{T: 3}
	tree.unbounded[0] = unboundedShape{hit: want}
	hit, ok := tree.Intersect(ray)
	if !ok || hit.T != 3 {
		t.Fatalf("expected the always-tested shape's hit to surface, got %v, %v", hit, ok)
	}
}
