// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/load"
	"golang.org/x/image/bmp"
)

// Image samples a decoded raster by nearest-neighbour lookup,
// clamping out-of-range uv to the image edge the same way the
// source system's PIL-backed texture did.
type Image struct {
	img image.Image
}

// LoadImage decodes r into an Image texture. The codec is chosen by
// file extension: ".bmp"
// goes through golang.org/x/image/bmp, anything else (including
// ".png") through the standard library's image/png.
func LoadImage(r io.Reader, filename string) (*Image, error) {
	var img image.Image
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".bmp") {
		img, err = bmp.Decode(r)
	} else {
		img, err = png.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: LoadImage %s: %w", filename, err)
	}
	return &Image{img: img}, nil
}

// LoadImageNamed resolves name through loc and decodes it as an Image
// texture, closing the underlying resource before returning.
func LoadImageNamed(loc load.Locator, name string) (*Image, error) {
	f, err := loc.GetResource(name)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", name, err)
	}
	defer f.Close()
	return LoadImage(f, name)
}

func (im *Image) Colour(u, v float64) *colour.Colour {
	u, v = clamp01(u), clamp01(v)
	bounds := im.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	x := int(u * float64(w))
	y := int(v * float64(h))
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	r, g, b, _ := im.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return colour.New(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}
