// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package raytrace is the top-level entry point for a Whitted-style
// recursive ray tracer: a scene description in, a rendered image out.
// The subsystems doing the actual work live in their own packages
// (math/lin, colour, shapes, texture, octree, light, shading, camera,
// sink, sceneio); this package only re-exports the names a caller
// needs to load a scene and render it.
package raytrace

import (
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/sceneio"
)

// Scene owns a render's shapes, lights, and views.
type Scene = scene.Scene

// Config holds the options New accepts.
type Config = scene.Config

// DefaultConfig returns the package's default scene configuration.
func DefaultConfig() Config { return scene.DefaultConfig() }

// New creates an empty Scene with the given configuration.
func New(cfg Config) *Scene { return scene.New(cfg) }

// Load decodes data as a YAML scene description into a Scene.
func Load(data []byte) (*Scene, error) { return sceneio.Load(data) }

// Render dispatches to the named view and returns whatever output it
// produces.
func Render(s *Scene, view string) (interface{}, error) { return s.Render(view) }
