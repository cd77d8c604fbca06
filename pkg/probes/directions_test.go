package probes

import (
	"math"
	"testing"
)

func TestSphereDirections_CountAndUnitLength(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64, 257} {
		dirs := SphereDirections(n)
		if len(dirs) != n {
			t.Fatalf("n=%d: expected %d directions, got %d", n, n, len(dirs))
		}
		for i, d := range dirs {
			if math.Abs(d.Length()-1.0) > 1e-9 {
				t.Errorf("n=%d: direction %d not unit length: %f", n, i, d.Length())
			}
		}
	}
}

func TestSphereDirections_NonPositiveCount(t *testing.T) {
	if dirs := SphereDirections(0); len(dirs) != 0 {
		t.Errorf("Expected empty sequence for n=0, got %d", len(dirs))
	}
	if dirs := SphereDirections(-5); len(dirs) != 0 {
		t.Errorf("Expected empty sequence for n=-5, got %d", len(dirs))
	}
}

func TestSphereDirections_CoversBothHemispheres(t *testing.T) {
	for _, n := range []int{2, 3, 16, 100} {
		dirs := SphereDirections(n)
		hasUp, hasDown := false, false
		for _, d := range dirs {
			if d.Z > 0 {
				hasUp = true
			}
			if d.Z <= 0 {
				hasDown = true
			}
		}
		if !hasUp || !hasDown {
			t.Errorf("n=%d: expected both hemispheres covered, up=%t down=%t", n, hasUp, hasDown)
		}
	}
}

func TestSphereDirections_Deterministic(t *testing.T) {
	a := SphereDirections(32)
	b := SphereDirections(32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Direction %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSphereDirections_NearUniformSpread(t *testing.T) {
	// The mean of a uniform direction set is near zero
	dirs := SphereDirections(512)
	var sumX, sumY, sumZ float64
	for _, d := range dirs {
		sumX += d.X
		sumY += d.Y
		sumZ += d.Z
	}
	n := float64(len(dirs))
	if math.Abs(sumX/n) > 0.05 || math.Abs(sumY/n) > 0.05 || math.Abs(sumZ/n) > 0.05 {
		t.Errorf("Expected near-zero mean direction, got (%f, %f, %f)", sumX/n, sumY/n, sumZ/n)
	}
}
