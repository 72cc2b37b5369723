// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sink provides the output collaborator a View renders into:
// an in-memory image buffer that tolerates concurrent writes to
// distinct pixels, with encode-to-file support for the common raster
// formats.
package sink

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/colour"
)

// ImageSink accumulates rendered pixels into an NRGBA raster. Its
// SetRectangle/SetPixel pair is the Output contract camera.View
// drives a render through.
type ImageSink struct {
	origin camera.Rect
	img    *image.NRGBA
}

// New returns an empty ImageSink; SetRectangle must be called (by a
// render) before SetPixel writes anywhere.
func New() *ImageSink { return &ImageSink{} }

// SetRectangle sizes the pixel buffer to r's extent, with the origin
// normalized to (0,0): SetPixel(x, y, ...) stores at
// (x-r.Left, y-r.Top).
func (s *ImageSink) SetRectangle(r camera.Rect) {
	s.origin = r
	s.img = image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
}

// SetPixel stores c, clamped to [0,1] then scaled to 0-255. Calls
// for distinct (x,y) are safe without external synchronization: each
// writes a disjoint four-byte span of the backing raster, which is
// the property the worker-pool dispatcher in camera relies on.
func (s *ImageSink) SetPixel(x, y int, c *colour.Colour) {
	if s.img == nil {
		return
	}
	clamped := c.Clamped()
	s.img.SetNRGBA(x-s.origin.Left, y-s.origin.Top, color.NRGBA{
		R: uint8(clamped.R*255 + 0.5),
		G: uint8(clamped.G*255 + 0.5),
		B: uint8(clamped.B*255 + 0.5),
		A: 255,
	})
}

// GetOutput returns the accumulated image, or nil if SetRectangle was
// never called.
func (s *ImageSink) GetOutput() image.Image {
	if s.img == nil {
		return nil
	}
	return s.img
}

// Save encodes the accumulated image to path, the format chosen by
// its file extension (png, jpeg, gif, tiff, bmp).
func (s *ImageSink) Save(path string) error {
	if s.img == nil {
		return nil
	}
	return imaging.Save(s.img, path)
}
