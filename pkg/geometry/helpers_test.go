package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-9

func assertVecNear(t *testing.T, label string, expected, got core.Vec3) {
	t.Helper()
	if math.Abs(expected.X-got.X) > tolerance ||
		math.Abs(expected.Y-got.Y) > tolerance ||
		math.Abs(expected.Z-got.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", label, expected, got)
	}
}

func assertHitT(t *testing.T, hit Hit, isHit bool, expectedT float64) {
	t.Helper()
	if !isHit {
		t.Fatalf("Expected hit at t=%f, but got miss", expectedT)
	}
	if math.Abs(hit.T-expectedT) > tolerance {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}
	if math.Abs(hit.Normal.Length()-1) > tolerance {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func assertMiss(t *testing.T, hit Hit, isHit bool) {
	t.Helper()
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
	if hit.IsHit() {
		t.Errorf("Expected sentinel t, got %f", hit.T)
	}
}
