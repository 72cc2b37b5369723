// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/load"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

// imageStub is the smallest image.Image that satisfies Image's
// decoded-raster field, for Mapper tests that only need a non-nil
// Texture and don't care about actual pixel values.
type imageStub struct {
	w, h    int
	r, g, b uint8
}

func (s *imageStub) ColorModel() color.Model { return color.NRGBAModel }
func (s *imageStub) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }
func (s *imageStub) At(x, y int) color.Color {
	return color.NRGBA{R: s.r, G: s.g, B: s.b, A: 255}
}

func TestSolidIgnoresUV(t *testing.T) {
	c := colour.New(0.2, 0.4, 0.6)
	s := Solid{C: c}
	if got := s.Colour(0.9, 0.1); got != c {
		t.Errorf("Solid.Colour = %v, want the fixed colour %v", got, c)
	}
}

func TestColourBandsPicksDiscreteBand(t *testing.T) {
	bands := ColourBands{Colours: []*colour.Colour{colour.New(1, 0, 0), colour.New(0, 1, 0), colour.New(0, 0, 1)}}
	if got := bands.Colour(0.1, 0); !lin.Aeq(got.R, 1) {
		t.Errorf("band 0 red = %v, want 1", got.R)
	}
	if got := bands.Colour(0.99, 0); !lin.Aeq(got.B, 1) {
		t.Errorf("band 2 blue = %v, want 1", got.B)
	}
}

func TestColourRampBlendsBetweenStops(t *testing.T) {
	ramp := ColourRamp{Colours: []*colour.Colour{colour.New(0, 0, 0), colour.New(1, 1, 1)}}
	mid := ramp.Colour(0.5, 0)
	if !lin.Aeq(mid.R, 0.5) {
		t.Errorf("midpoint red = %v, want 0.5", mid.R)
	}
}

func TestSphereMapperWrapsHitPointIntoUnitUV(t *testing.T) {
	img := &Image{img: solidRaster(1, 1, 255, 0, 0)}
	mapper := SphereMapper(img)
	hit := &shapes.Hit{Point: lin.NewV3S(1, 0, 0)}
	c := mapper.At(hit)
	if c == nil {
		t.Fatal("SphereMapper.At returned nil")
	}
}

func TestTriangleMapperReadsBarycentricUV(t *testing.T) {
	img := &Image{img: solidRaster(2, 2, 0, 255, 0)}
	mapper := TriangleMapper(img)
	hit := &shapes.Hit{U: 0.25, V: 0.25}
	if c := mapper.At(hit); c == nil {
		t.Fatal("TriangleMapper.At returned nil")
	}
}

func TestLoadImageDecodesBMPByExtension(t *testing.T) {
	img, err := LoadImage(bytes.NewReader(minimalBMP(200, 100, 50)), "wall.bmp")
	if err != nil {
		t.Fatal(err)
	}
	c := img.Colour(0.5, 0.5)
	if c.R < 0.5 {
		t.Errorf("decoded BMP red channel = %v, want close to 200/255", c.R)
	}
}

func TestLoadImageNamedResolvesThroughLocator(t *testing.T) {
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

	loc := load.NewLocator()
	defer loc.Dispose()

	if _, err := LoadImageNamed(loc, "wall.bmp"); err != nil {
		t.Fatal(err)
	}
}

// solidRaster is a tiny in-memory image.Image filling every pixel with
// the same colour, for Mapper tests that only need a non-nil Texture.
func solidRaster(w, h int, r, g, b uint8) *imageStub {
	return &imageStub{w: w, h: h, r: r, g: g, b: b}
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
	binary.LittleEndian.PutUint32(buf[18:], 1)   // width
	binary.LittleEndian.PutUint32(buf[22:], 1)   // height
	binary.LittleEndian.PutUint16(buf[26:], 1)   // planes
	binary.LittleEndian.PutUint16(buf[28:], 24)  // bits per pixel
	// compression, image size, x/y ppm, colours used/important left 0.

	px := buf[headerSize+dibSize:]
	px[0], px[1], px[2] = b, g, r // BMP pixel order is BGR.
	return buf
}
