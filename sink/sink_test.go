// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sink

import (
	"sync"
	"testing"

	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/colour"
)

func TestSetPixelNormalizesOrigin(t *testing.T) {
	s := New()
	s.SetRectangle(camera.Rect{Left: 10, Top: 20, Right: 14, Bottom: 24})
	s.SetPixel(11, 21, colour.White)

	img := s.GetOutput()
	r, g, b, _ := img.At(1, 1).RGBA()
	if r == 0 || g == 0 || b == 0 {
		t.Errorf("pixel at normalized (1,1) = (%d,%d,%d), want white", r, g, b)
	}
}

func TestSetPixelClampsOutOfRangeColour(t *testing.T) {
	s := New()
	s.SetRectangle(camera.Rect{Left: 0, Top: 0, Right: 2, Bottom: 2})
	s.SetPixel(0, 0, colour.New(2, -1, 0.5))

	img := s.GetOutput()
	r, g, _, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("over-bright red channel = %d, want clamped to 255", r>>8)
	}
	if g != 0 {
		t.Errorf("negative green channel = %d, want clamped to 0", g)
	}
}

func TestConcurrentSetPixelDistinctCoordinates(t *testing.T) {
	s := New()
	s.SetRectangle(camera.Rect{Left: 0, Top: 0, Right: 8, Bottom: 8})

	var wg sync.WaitGroup
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			wg.Add(1)
			go func(x, y int) {
				defer wg.Done()
				s.SetPixel(x, y, colour.White)
			}(x, y)
		}
	}
	wg.Wait()

	img := s.GetOutput()
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r == 0 {
				t.Fatalf("pixel (%d,%d) never written", x, y)
			}
		}
	}
}
