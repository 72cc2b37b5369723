// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package colour

import "testing"

func TestAdd(t *testing.T) {
	a, b, c := New(0.1, 0.2, 0.3), New(0.4, 0.1, 0.0), &Colour{}
	c.Add(a, b)
	if !Aeq(c.R, 0.5) || !Aeq(c.G, 0.3) || !Aeq(c.B, 0.3) {
		t.Errorf("Add got %v", c)
	}
}

func TestMult(t *testing.T) {
	a, b, c := New(0.5, 1.0, 0.0), New(0.5, 0.5, 1.0), &Colour{}
	c.Mult(a, b)
	if !Aeq(c.R, 0.25) || !Aeq(c.G, 0.5) || !Aeq(c.B, 0.0) {
		t.Errorf("Mult got %v", c)
	}
}

func TestClamped(t *testing.T) {
	c := New(1.5, -0.2, 0.5).Clamped()
	if c.R != 1 || c.G != 0 || c.B != 0.5 {
		t.Errorf("Clamped got %v", c)
	}
}

func TestIsUnset(t *testing.T) {
	if !New(0, 0, 0).IsUnset() {
		t.Error("expected zero colour to be unset")
	}
	if New(0, 0, 0.001).IsUnset() {
		t.Error("expected non-zero colour to not be unset")
	}
}

func Aeq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.000001
}
