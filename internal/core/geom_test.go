package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestVec2Dist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(1, 1), V(1, 1), 0},
		{"horizontal", V(0, 0), V(3, 0), 3},
		{"diagonal", V(0, 0), V(3, 4), 5},
		{"negative", V(-1, -1), V(2, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dist(tc.b); got != tc.expected {
				t.Errorf("Dist() = %f, expected %f", got, tc.expected)
			}
			if got := tc.b.Dist(tc.a); got != tc.expected {
				t.Errorf("Dist() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(10, 0).Normalize()
	if n != V(1, 0) {
		t.Errorf("Normalize() = %v, expected (1, 0)", n)
	}

	d := V(3, 4).Normalize()
	if math.Abs(d.Len()-1) > 1e-12 {
		t.Errorf("Normalize() length = %f, expected 1", d.Len())
	}

	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("Normalize() of zero = %v, expected zero", z)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 35); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 35) = %f, expected 0", got)
	}
	if got := ClampF(40, 0, 35); got != 35 {
		t.Errorf("ClampF(40, 0, 35) = %f, expected 35", got)
	}
}
