// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package light

import (
	"testing"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/shapes"
)

func TestPointCalcInfo(t *testing.T) {
	p := NewPoint(lin.NewV3S(0, 0, -10), colour.White)
	point := lin.NewV3S(0, 0, 0)
	shifted := lin.NewV3S(0, 0, 0.001)

	info := p.CalcInfo(point, shifted)
	if !info.IsInside {
		t.Fatal("point light should always be inside")
	}
	if len(info.ShadowVectors) != 1 {
		t.Fatalf("expected 1 shadow vector, got %d", len(info.ShadowVectors))
	}
	if want := -10.0; !lin.Aeq(info.ShadowVectors[0].Z, want-0.001) {
		t.Errorf("shadow vector z = %v, want %v", info.ShadowVectors[0].Z, want-0.001)
	}
}

func TestSpotlightBehindIsOutside(t *testing.T) {
	s := NewSpotlight(shapes.New(), colour.White, 4)
	info := s.CalcInfo(lin.NewV3S(0, -1, 0), lin.NewV3S(0, -1, 0))
	if info.IsInside {
		t.Error("point behind the spotlight should be outside")
	}
}

func TestSpotlightOnAxisIsInsideWithFullIntensity(t *testing.T) {
	s := NewSpotlight(shapes.New(), colour.White, 4)
	info := s.CalcInfo(lin.NewV3S(0, 3, 0), lin.NewV3S(0, 3, 0))
	if !info.IsInside {
		t.Fatal("point straight up the spotlight's axis should be inside")
	}
	if info.Intensity < 0.99 {
		t.Errorf("on-axis intensity = %v, want ~1", info.Intensity)
	}
	if len(info.ShadowVectors) != 4 {
		t.Errorf("expected 4 shadow samples, got %d", len(info.ShadowVectors))
	}
}

func TestSpotlightBeyondCutoffIsOutside(t *testing.T) {
	s := NewSpotlight(shapes.New(), colour.White, 4)
	// Well past the 26.57 degree cutoff from the y axis.
	info := s.CalcInfo(lin.NewV3S(5, 1, 0), lin.NewV3S(5, 1, 0))
	if info.IsInside {
		t.Error("point far outside the cone angle should be outside")
	}
}

func TestConicalBeyondLengthIsOutside(t *testing.T) {
	c := NewConical(shapes.New(), colour.White, 2)
	info := c.CalcInfo(lin.NewV3S(0, 3, 0), lin.NewV3S(0, 3, 0))
	if info.IsInside {
		t.Error("point beyond the configured length should be outside")
	}
}

func TestConicalWithinLengthIsInside(t *testing.T) {
	c := NewConical(shapes.New(), colour.White, 0)
	info := c.CalcInfo(lin.NewV3S(0, 3, 0), lin.NewV3S(0, 3, 0))
	if !info.IsInside {
		t.Fatal("unbounded conical light should reach along its axis")
	}
	if len(info.ShadowVectors) != 1 {
		t.Errorf("expected 1 shadow vector to the apex, got %d", len(info.ShadowVectors))
	}
}
