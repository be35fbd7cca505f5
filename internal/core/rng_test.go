package core

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if x, y := a.IntRange(0, 1000), b.IntRange(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)

	for i := 0; i < 1000; i++ {
		if v := r.IntRange(10, 20); v < 10 || v > 20 {
			t.Fatalf("IntRange(10, 20) = %d out of range", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %f out of range", v)
		}
		if v := r.FloatRange(5, 7); v < 5 || v >= 7 {
			t.Fatalf("FloatRange(5, 7) = %f out of range", v)
		}
	}
}

func TestRNGIntRangeCoversBounds(t *testing.T) {
	r := NewRNG(3)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[r.IntRange(8, 15)] = true
	}
	for v := 8; v <= 15; v++ {
		if !seen[v] {
			t.Errorf("IntRange(8, 15) never produced %d", v)
		}
	}
}

func TestRNGNonPositiveIntn(t *testing.T) {
	r := NewRNG(0)
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn of a non-positive bound should be 0")
	}
}

func TestRNGChanceExtremes(t *testing.T) {
	r := NewRNG(11)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
