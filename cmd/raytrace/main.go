// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command raytrace renders a YAML scene description to an image file.
// It is invoked as:
//
//	raytrace -scene level.yaml -view main -out render.png
//
// The scene file and any textures it references are resolved through
// a load.Locator, so a scene can be run either straight off disk
// during development or from a packaged assets.zip.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/load"
	"github.com/galvanized/raytrace/sceneio"
	"github.com/galvanized/raytrace/sink"
)

func main() {
	scenePath := flag.String("scene", "", "scene description file (required)")
	viewName := flag.String("view", "", "named view to render (required)")
	outPath := flag.String("out", "render.png", "output image path")
	flag.Parse()

	if *scenePath == "" || *viewName == "" {
		fmt.Println("Usage: raytrace -scene level.yaml -view main [-out render.png]")
		flag.PrintDefaults()
		return
	}

	if err := render(*scenePath, *viewName, *outPath); err != nil {
		log.Fatal(err)
	}
}

func render(scenePath, viewName, outPath string) error {
	loc := load.NewLocator()
	defer loc.Dispose()

	scn, err := sceneio.LoadFile(loc, scenePath)
	if err != nil {
		return fmt.Errorf("raytrace: %w", err)
	}

	renderer, ok := scn.View(viewName)
	if !ok {
		return fmt.Errorf("raytrace: no such view %q", viewName)
	}
	v, ok := renderer.(*camera.View)
	if !ok {
		return fmt.Errorf("raytrace: view %q is not a camera.View", viewName)
	}

	out := sink.New()
	v.Output = out

	if _, err := scn.Render(viewName); err != nil {
		return fmt.Errorf("raytrace: %w", err)
	}
	if err := out.Save(outPath); err != nil {
		return fmt.Errorf("raytrace: saving %s: %w", outPath, err)
	}
	log.Printf("raytrace: wrote %s", outPath)
	return nil
}
