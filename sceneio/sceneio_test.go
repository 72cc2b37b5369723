// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sceneio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/load"
)

const sampleScene = `
scene:
  maxReflections: 4
shapes:
  - name: ball
    kind: sphere
    radius: 1
    transform:
      translate: [0, 0, 5]
    material:
      diffuse: [1, 0, 0]
lights:
  - name: key
    kind: point
    position: [0, 10, -5]
    colour: [1, 1, 1]
views:
  - name: main
    kind: centered
    eyeZ: -10
    physical: {left: 0, top: 0, right: 80, bottom: 60}
    viewRect: {left: -4, top: -3, right: 4, bottom: 3}
    ambient: [0.1, 0.1, 0.1]
    maxReflect: 3
`

func TestLoadBuildsShapesLightsAndViews(t *testing.T) {
	scn, err := Load([]byte(sampleScene))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(scn.Lights()); got != 1 {
		t.Errorf("len(Lights()) = %d, want 1", got)
	}
	v, ok := scn.View("main")
	if !ok {
		t.Fatal("expected view \"main\" to be registered")
	}
	if _, ok := v.(*camera.View); !ok {
		t.Errorf("view is %T, want *camera.View", v)
	}
}

func TestLoadRejectsUnsupportedShapeKind(t *testing.T) {
	bad := strings.Replace(sampleScene, "kind: sphere", "kind: dodecahedron", 1)
	if _, err := Load([]byte(bad)); err == nil {
		t.Fatal("expected an error for an unsupported shape kind")
	}
}

func TestLoadRejectsMissingSphereRadius(t *testing.T) {
	bad := strings.Replace(sampleScene, "radius: 1", "radius: 0", 1)
	if _, err := Load([]byte(bad)); err == nil {
		t.Fatal("expected an error for a non-positive sphere radius")
	}
}

func TestLoadRejectsTextureWithoutLocator(t *testing.T) {
	withTex := strings.Replace(sampleScene, "diffuse: [1, 0, 0]", "diffuse: [1, 0, 0]\n      texture: wall.bmp", 1)
	if _, err := Load([]byte(withTex)); err == nil {
		t.Fatal("expected an error when a texture is named without a Locator")
	}
}

func TestLoadFileResolvesTextureThroughLocator(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	if err := os.Mkdir("textures", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("textures", "wall.bmp"), minimalBMP(10, 20, 30), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("level.yaml", []byte(strings.Replace(sampleScene,
		"diffuse: [1, 0, 0]", "diffuse: [1, 0, 0]\n      texture: wall.bmp", 1)), 0o644); err != nil {
		t.Fatal(err)
	}

	loc := load.NewLocator()
	defer loc.Dispose()

	scn, err := LoadFile(loc, "level.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := scn.View("main"); !ok {
		t.Fatal("expected view \"main\" to be registered")
	}
}

func TestLoadFileResolvesMeshThroughLocator(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	if err := os.Mkdir("meshes", 0o755); err != nil {
		t.Fatal(err)
	}
	const triangleObj = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(filepath.Join("meshes", "tri.obj"), []byte(triangleObj), 0o644); err != nil {
		t.Fatal(err)
	}

	withMesh := strings.Replace(sampleScene, "kind: sphere", "kind: mesh", 1)
	withMesh = strings.Replace(withMesh, "radius: 1", "mesh: tri.obj", 1)
	if err := os.WriteFile("level.yaml", []byte(withMesh), 0o644); err != nil {
		t.Fatal(err)
	}

	loc := load.NewLocator()
	defer loc.Dispose()

	scn, err := LoadFile(loc, "level.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := scn.View("main"); !ok {
		t.Fatal("expected view \"main\" to be registered")
	}
}

// minimalBMP encodes a 1x1 24-bit uncompressed BMP, the smallest file
// golang.org/x/image/bmp can decode.
func minimalBMP(r, g, b byte) []byte {
	const headerSize = 14
	const dibSize = 40
	const rowSize = 4 // 3 colour bytes rounded up to a 4-byte boundary.
	buf := make([]byte, headerSize+dibSize+rowSize)

	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:], headerSize+dibSize)

	binary.LittleEndian.PutUint32(buf[14:], dibSize)
	binary.LittleEndian.PutUint32(buf[18:], 1) // width
	binary.LittleEndian.PutUint32(buf[22:], 1) // height
	binary.LittleEndian.PutUint16(buf[26:], 1) // planes
	binary.LittleEndian.PutUint16(buf[28:], 24) // bits per pixel
	// compression, image size, x/y ppm, colours used/important left 0.

	px := buf[headerSize+dibSize:]
	px[0], px[1], px[2] = b, g, r // BMP pixel order is BGR.
	return buf
}
