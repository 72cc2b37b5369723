// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/galvanized/raytrace/math/lin"
)

// Intersector is the minimal interface a PolyMesh's internal index
// needs from its octree so this package does not have to import
// octree (which itself imports shapes for Shape/AABB). sceneio's mesh
// builder creates the real octree.Tree and hands it to NewPolyMesh
// through this seam.
type Intersector interface {
	Intersect(ray *Ray) (*Hit, bool)
	Insert(s Shape)
}

// PolyMesh is a collection of triangles sharing one material, backed
// by an internal spatial index once the triangle count passes the
// index's own split threshold. Large meshes would otherwise force
// every ray to test every triangle in turn.
type PolyMesh struct {
	tris  []*Triangle
	index Intersector
	trans *Transform
	mat   *Material
	aabb  *AABB
}

// NewPolyMesh creates a mesh from pre-built triangles (object-space,
// typically with their own identity Transform since the mesh-level
// Transform already places the whole mesh in world space). index, if
// non-nil, is populated with every triangle and used for Intersect
// instead of a linear scan — callers pass an *octree.Tree for meshes
// large enough to benefit from one.
func NewPolyMesh(tris []*Triangle, index Intersector, t *Transform, m *Material) *PolyMesh {
	pm := &PolyMesh{tris: tris, index: index, trans: t, mat: m}
	if len(tris) > 0 {
		box := tris[0].WorldAABB()
		for _, tr := range tris[1:] {
			box = box.Union(tr.WorldAABB())
		}
		pm.aabb = worldAABB(t, box)
	}
	if index != nil {
		for _, tr := range tris {
			index.Insert(tr)
		}
	}
	return pm
}

func (pm *PolyMesh) Transform() *Transform { return pm.trans }
func (pm *PolyMesh) Material() *Material   { return pm.mat }
func (pm *PolyMesh) WorldAABB() *AABB      { return pm.aabb }

func (pm *PolyMesh) Intersect(worldRay *Ray) (*Hit, bool) {
	r := pm.trans.ToObject(worldRay)
	var hits []*Hit
	tris := pm.tris
	if pm.index != nil {
		tris = nil
		if h, ok := pm.index.Intersect(r); ok {
			hits = append(hits, h)
			hits = append(hits, h.Others...)
			h.Others = nil
		}
	}
	for _, tr := range tris {
		if h, ok := tr.Intersect(r); ok {
			hits = append(hits, h)
			hits = append(hits, h.Others...)
			h.Others = nil
		}
	}
	// Triangle hits carry the object-space ray and the triangle as
	// Shape; re-home them on the mesh so WorldPoint/WorldNormal use the
	// world ray and the mesh's Transform, and shading its Material.
	for _, h := range hits {
		h.Ray, h.Shape = worldRay, pm
	}
	return sortHits(hits)
}

// LoadPolyMesh reads a Wavefront OBJ stream and returns its triangles
// in object space, positions only (no normals or texture
// coordinates) — adapted from the engine's OBJ loader, trimmed to
// the subset a ray-traced mesh needs: "v" vertex lines and
// triangular "f" face lines referencing them by 1-based index.
func LoadPolyMesh(r io.Reader) ([]*Triangle, error) {
	var verts []*lin.V3
	var tris []*Triangle
	ident := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			var x, y, z float64
			if _, err := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); err != nil {
				return nil, fmt.Errorf("LoadPolyMesh: line %d: bad vertex: %w", lineNo, err)
			}
			verts = append(verts, lin.NewV3S(x, y, z))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("LoadPolyMesh: line %d: face needs 3 vertices", lineNo)
			}
			idx := make([]int, 3)
			for i := 0; i < 3; i++ {
				vi, err := parseFaceVertex(fields[i+1])
				if err != nil {
					return nil, fmt.Errorf("LoadPolyMesh: line %d: %w", lineNo, err)
				}
				idx[i] = vi
			}
			for _, i := range idx {
				if i < 0 || i >= len(verts) {
					return nil, fmt.Errorf("LoadPolyMesh: line %d: vertex index out of range", lineNo)
				}
			}
			tris = append(tris, NewTriangle(verts[idx[0]], verts[idx[1]], verts[idx[2]], ident, &Material{}))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("LoadPolyMesh: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("LoadPolyMesh: no faces found")
	}
	return tris, nil
}

// parseFaceVertex extracts the vertex index from an OBJ face token,
// which may be a bare "3" or carry texture/normal indices as
// "3/4/5" or "3//5"; only the leading vertex index matters here.
func parseFaceVertex(token string) (int, error) {
	vpart := token
	if i := strings.IndexByte(token, '/'); i >= 0 {
		vpart = token[:i]
	}
	var v int
	if _, err := fmt.Sscanf(vpart, "%d", &v); err != nil {
		return 0, fmt.Errorf("bad face index %q", token)
	}
	return v - 1, nil // OBJ indices are 1-based.
}
