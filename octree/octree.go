// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package octree provides a spatial index over shapes.Shape values,
// routing a ray to only the octants its path could plausibly hit
// instead of testing every shape in a scene. A Tree satisfies
// shapes.Intersector so a PolyMesh or a scene can hold one
// interchangeably with a linear scan.
package octree

import (
	"sort"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

// defaultSplitThreshold is the shape count a leaf must exceed before
// it splits into eight octants, matching the source system's
// OctTreeLeaf.add_shape threshold check.
const defaultSplitThreshold = 8

const defaultMaxDepth = 16

// node is either a leaf (holding shapes directly) or a branch
// (holding eight child nodes). The source system modelled these as
// two classes sharing a base with a parent_branch back-pointer so a
// leaf could ask its branch to replace it on split; here the caller
// already holds the pointer to whatever it just inserted into, so a
// split instead returns its replacement node and the caller swaps it
// into its own slot directly. No parent pointers, no cycles.
type node struct {
	box      shapes.AABB
	shapes   []shapes.Shape // non-nil only on a leaf.
	children *[8]*node      // non-nil only on a branch.
	depth    int
}

// Tree is an octree over a fixed world-space bounding region. Shapes
// with no finite WorldAABB (infinite planes/cones) are kept in a
// separate always-tested list rather than forced into every octant.
type Tree struct {
	root      *node
	unbounded []shapes.Shape
	threshold int
	maxDepth  int
}

// New returns an empty Tree spanning box. threshold is the shape
// count a leaf may hold before splitting; 0 selects a sensible
// default. maxDepth bounds recursion so a pathological cluster of
// overlapping shapes cannot split forever; 0 selects a sensible
// default.
func New(box *shapes.AABB, threshold, maxDepth int) *Tree {
	if threshold <= 0 {
		threshold = defaultSplitThreshold
	}
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &Tree{
		root:      &node{box: *box},
		threshold: threshold,
		maxDepth:  maxDepth,
	}
}

// Insert adds a shape to the tree, routing it by its world AABB. A
// shape with no finite bound is kept in an always-tested list instead
// of being pushed into the root, which would force every leaf the
// shape could never pass through to test it anyway.
func (t *Tree) Insert(s shapes.Shape) {
	box := s.WorldAABB()
	if box == nil {
		t.unbounded = append(t.unbounded, s)
		return
	}
	t.root = t.root.insert(s, box, t.threshold, t.maxDepth)
}

// insert adds s to the subtree rooted at n, returning the node that
// should replace n in its parent's child slot (itself, unless this
// insert caused a leaf-to-branch split).
func (n *node) insert(s shapes.Shape, box *shapes.AABB, threshold, maxDepth int) *node {
	if n.children != nil {
		for i, child := range n.children {
			if boxesOverlap(&child.box, box) {
				n.children[i] = child.insert(s, box, threshold, maxDepth)
			}
		}
		return n
	}

	n.shapes = append(n.shapes, s)
	if len(n.shapes) <= threshold || n.depth >= maxDepth {
		return n
	}
	return n.split(threshold, maxDepth)
}

// split turns a leaf into a branch of eight children, one per octant
// of n's box, re-inserting every shape the leaf held into whichever
// children its AABB overlaps.
func (n *node) split(threshold, maxDepth int) *node {
	mid := n.box.Centre()
	var children [8]*node
	for i := 0; i < 8; i++ {
		children[i] = &node{box: octantBox(n.box, mid, i), depth: n.depth + 1}
	}
	branch := &node{box: n.box, children: &children, depth: n.depth}
	for _, s := range n.shapes {
		branch = branch.insert(s, s.WorldAABB(), threshold, maxDepth)
	}
	return branch
}

// octantBox returns the i'th octant of box split at mid. Bit 0 of i
// selects the x half, bit 1 the y half, bit 2 the z half.
func octantBox(box shapes.AABB, mid *lin.V3, i int) shapes.AABB {
	o := shapes.AABB{}
	if i&1 == 0 {
		o.Sx, o.Lx = box.Sx, mid.X
	} else {
		o.Sx, o.Lx = mid.X, box.Lx
	}
	if i&2 == 0 {
		o.Sy, o.Ly = box.Sy, mid.Y
	} else {
		o.Sy, o.Ly = mid.Y, box.Ly
	}
	if i&4 == 0 {
		o.Sz, o.Lz = box.Sz, mid.Z
	} else {
		o.Sz, o.Lz = mid.Z, box.Lz
	}
	return o
}

// boxesOverlap is shapes.AABB.Overlaps for two plain values instead
// of a receiver plus pointer.
func boxesOverlap(a, b *shapes.AABB) bool {
	return a.Lx > b.Sx && a.Sx < b.Lx &&
		a.Ly > b.Sy && a.Sy < b.Ly &&
		a.Lz > b.Sz && a.Sz < b.Lz
}

// rayMightHitBox is a standard slab test: the ray is walked against
// each axis-aligned pair of planes and the overlap of the three
// per-axis intervals is checked for being non-empty and ahead of the
// ray origin.
func rayMightHitBox(ray *shapes.Ray, box *shapes.AABB) bool {
	tmin, tmax := -lin.Large, lin.Large
	if !slab(ray.Origin.X, ray.Dir.X, box.Sx, box.Lx, &tmin, &tmax) {
		return false
	}
	if !slab(ray.Origin.Y, ray.Dir.Y, box.Sy, box.Ly, &tmin, &tmax) {
		return false
	}
	if !slab(ray.Origin.Z, ray.Dir.Z, box.Sz, box.Lz, &tmin, &tmax) {
		return false
	}
	return tmax >= 0 && tmax >= tmin
}

func slab(origin, dir, lo, hi float64, tmin, tmax *float64) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	t1, t2 := (lo-origin)/dir, (hi-origin)/dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return *tmin <= *tmax
}

// Intersect tests ray against every shape the ray's path could reach:
// the always-tested unbounded shapes, plus whichever leaves the
// ray's box actually passes through. A shape spanning more than one
// leaf is only ever tested once, tracked via seen.
func (t *Tree) Intersect(ray *shapes.Ray) (*shapes.Hit, bool) {
	var hits []*shapes.Hit
	seen := make(map[shapes.Shape]bool)
	for _, s := range t.unbounded {
		testOnce(s, ray, seen, &hits)
	}
	t.root.collect(ray, seen, &hits)
	return mergeHits(hits)
}

func (n *node) collect(ray *shapes.Ray, seen map[shapes.Shape]bool, hits *[]*shapes.Hit) {
	if !rayMightHitBox(ray, &n.box) {
		return
	}
	if n.children != nil {
		for _, child := range n.children {
			child.collect(ray, seen, hits)
		}
		return
	}
	for _, s := range n.shapes {
		testOnce(s, ray, seen, hits)
	}
}

func testOnce(s shapes.Shape, ray *shapes.Ray, seen map[shapes.Shape]bool, hits *[]*shapes.Hit) {
	if seen[s] {
		return
	}
	seen[s] = true
	if h, ok := s.Intersect(ray); ok {
		*hits = append(*hits, h)
		*hits = append(*hits, h.Others...)
		h.Others = nil
	}
}

// mergeHits consolidates every candidate hit gathered from across the
// tree's leaves into spec's single-chain Hit result: nearest first,
// every other positive-t hit attached as Others in ascending T order.
func mergeHits(hits []*shapes.Hit) (*shapes.Hit, bool) {
	if len(hits) == 0 {
		return nil, false
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	nearest := hits[0]
	nearest.Others = hits[1:]
	return nearest, true
}
