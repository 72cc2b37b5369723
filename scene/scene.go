// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene owns a render's shapes, lights, and views, and
// answers the ray tests every shading and sampling step depends on.
package scene

import (
	"fmt"
	"sort"

	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/octree"
	"github.com/galvanized/raytrace/shapes"
)

// Renderer is whatever a named view entry must provide to be driven
// by Scene.Render. camera.View implements this; kept here (rather
// than imported from camera) so scene does not depend on camera —
// camera depends on scene instead, the same one-way layering the
// rest of this module uses elsewhere.
type Renderer interface {
	Render(scn *Scene) (interface{}, error)
}

// Config holds the options Scene.New accepts, mirroring the source
// system's scene-construction keywords.
type Config struct {
	UseOctree            bool
	OctreeSplitThreshold int
	MaxReflections       int
}

// DefaultConfig returns the source system's defaults: octree enabled,
// split threshold 20, max reflections 5.
func DefaultConfig() Config {
	return Config{UseOctree: true, OctreeSplitThreshold: 20, MaxReflections: 5}
}

// Scene owns named collections of shapes, lights, and views, and
// lazily builds a spatial index over the shapes the first time it is
// rendered (or whenever a shape is added after that, since the index
// would otherwise be stale).
type Scene struct {
	cfg Config

	shapes     map[string]shapes.Shape
	shapeOrder []string
	lights     map[string]light.Light
	views      map[string]Renderer

	shapeSeq int
	lightSeq int
	viewSeq  int

	index     *octree.Tree
	indexStale bool
}

// New creates an empty Scene with the given configuration.
func New(cfg Config) *Scene {
	return &Scene{
		cfg:    cfg,
		shapes: map[string]shapes.Shape{},
		lights: map[string]light.Light{},
		views:  map[string]Renderer{},
	}
}

// AddShape adds s under name, or an auto-generated "Shape%d" if name
// is omitted. An explicitly supplied name that collides with an
// existing shape is an error; an omitted name probes successive
// "Shape%d" candidates until a free one is found.
func (s *Scene) AddShape(shape shapes.Shape, name ...string) (string, error) {
	n, err := reserve(s.shapes, "Shape", &s.shapeSeq, name)
	if err != nil {
		return "", err
	}
	s.shapes[n] = shape
	s.shapeOrder = append(s.shapeOrder, n)
	s.indexStale = true
	return n, nil
}

// AddLight adds l under name, or an auto-generated "Light%d".
func (s *Scene) AddLight(l light.Light, name ...string) (string, error) {
	n, err := reserve(s.lights, "Light", &s.lightSeq, name)
	if err != nil {
		return "", err
	}
	s.lights[n] = l
	return n, nil
}

// AddView adds v under name, or an auto-generated "View%d".
func (s *Scene) AddView(v Renderer, name ...string) (string, error) {
	n, err := reserve(s.views, "View", &s.viewSeq, name)
	if err != nil {
		return "", err
	}
	s.views[n] = v
	return n, nil
}

// reserve resolves the name to register a new entry under: the
// caller's explicit name if it does not collide, else the next free
// "prefix%d" candidate. Shared by AddShape/AddLight/AddView, which
// otherwise differ only in their map's value type.
func reserve[V any](existing map[string]V, prefix string, seq *int, name []string) (string, error) {
	if len(name) > 0 && name[0] != "" {
		if _, taken := existing[name[0]]; taken {
			return "", fmt.Errorf("scene: name %q already in use", name[0])
		}
		return name[0], nil
	}
	for {
		candidate := fmt.Sprintf("%s%d", prefix, *seq)
		*seq++
		if _, taken := existing[candidate]; !taken {
			return candidate, nil
		}
	}
}

// View returns the named view (typically a *camera.View, type-asserted
// by the caller to reach fields camera.View exposes but Renderer does
// not, e.g. to attach an Output sink after a sceneio.Load).
func (s *Scene) View(name string) (Renderer, bool) {
	v, ok := s.views[name]
	return v, ok
}

// Lights returns every light added to the scene.
func (s *Scene) Lights() []light.Light {
	ls := make([]light.Light, 0, len(s.lights))
	for _, l := range s.lights {
		ls = append(ls, l)
	}
	return ls
}

// GetMaxReflections returns the configured recursion cap.
func (s *Scene) GetMaxReflections() int { return s.cfg.MaxReflections }

// Render builds the spatial index if needed and enabled, then
// dispatches to the named view, returning whatever output the view
// produces (typically an image from its output sink).
func (s *Scene) Render(viewName string) (interface{}, error) {
	v, ok := s.views[viewName]
	if !ok {
		return nil, fmt.Errorf("scene: no such view %q", viewName)
	}
	s.ensureIndex()
	return v.Render(s)
}

// ensureIndex (re)builds the octree when the shape set has grown
// since the last build, the scene is configured to use one, and
// there are enough shapes to meet the split threshold.
func (s *Scene) ensureIndex() {
	if !s.indexStale {
		return
	}
	s.indexStale = false
	if !s.cfg.UseOctree || len(s.shapes) < s.cfg.OctreeSplitThreshold {
		s.index = nil
		return
	}
	box := s.worldBounds()
	s.index = octree.New(box, s.cfg.OctreeSplitThreshold, 0)
	for _, n := range s.shapeOrder {
		s.index.Insert(s.shapes[n])
	}
}

func (s *Scene) worldBounds() *shapes.AABB {
	var box *shapes.AABB
	for _, n := range s.shapeOrder {
		b := s.shapes[n].WorldAABB()
		if b == nil {
			continue
		}
		if box == nil {
			box = b
		} else {
			box = box.Union(b)
		}
	}
	if box == nil {
		box = shapes.Infinite()
	}
	return box
}

// TestIntersect returns the nearest positive-t hit along ray across
// every shape in the scene except exclude, or ok=false if the ray
// hits nothing. For a shadow ray (ray.Shadow true) callers typically
// only care whether t <= 1, but TestIntersect itself always returns
// the true nearest hit — the shading model applies the t <= 1 cutoff
// itself while walking the returned hit's chain.
func (s *Scene) TestIntersect(ray *shapes.Ray, exclude shapes.Shape) (*shapes.Hit, bool) {
	if s.index != nil {
		return s.indexIntersect(ray, exclude)
	}
	var best *shapes.Hit
	var hits []*shapes.Hit
	for _, n := range s.shapeOrder {
		shape := s.shapes[n]
		if shape == exclude {
			continue
		}
		h, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		hits = append(hits, h)
		hits = append(hits, h.Others...)
		h.Others = nil
	}
	if len(hits) == 0 {
		return nil, false
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	best = hits[0]
	best.Others = hits[1:]
	return best, true
}

// indexIntersect runs the ray through the octree and filters out
// exclude's own hits from the result, since octree.Tree.Intersect
// has no notion of exclusion.
func (s *Scene) indexIntersect(ray *shapes.Ray, exclude shapes.Shape) (*shapes.Hit, bool) {
	hit, ok := s.index.Intersect(ray)
	if !ok {
		return nil, false
	}
	chain := append([]*shapes.Hit{hit}, hit.Others...)
	filtered := chain[:0]
	for _, h := range chain {
		if h.Shape != exclude {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return nil, false
	}
	nearest := filtered[0]
	nearest.Others = filtered[1:]
	return nearest, true
}
