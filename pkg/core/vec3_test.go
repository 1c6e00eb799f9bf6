package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on reflection",
			vector:   NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degree reflection",
			vector:   NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Grazing direction is unchanged",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := NewVec3(0, 0, 0).Normalize(); !got.IsZero() {
		t.Errorf("Expected zero vector, got %v", got)
	}

	got := NewVec3(3, 0, 4).Normalize()
	if math.Abs(got.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", got.Length())
	}
}

func TestTransformRay_PreservesParameter(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(2, 2, 2))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))

	moved := TransformRay(m, ray)

	if moved.Origin.Subtract(NewVec3(1, 2, 3)).Length() > 1e-12 {
		t.Errorf("Expected origin (1,2,3), got %v", moved.Origin)
	}
	// Direction is scaled, not normalized, so At(t) maps consistently.
	expected := TransformPoint(m, ray.At(2.5))
	if moved.At(2.5).Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, moved.At(2.5))
	}
}
