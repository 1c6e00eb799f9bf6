package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestMaterial_Shade(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	white := core.NewVec3(1, 1, 1)

	tests := []struct {
		name      string
		material  *Material
		ray       core.Ray
		toLight   core.Vec3
		intensity core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "Diffuse only, light along normal",
			material:  NewMaterial(core.NewVec3(0.5, 0.25, 1), core.Vec3{}, 1),
			ray:       core.NewRay(core.NewVec3(1, 0, 1), core.NewVec3(-1, 0, -1)),
			toLight:   normal,
			intensity: white,
			expected:  core.NewVec3(0.5, 0.25, 1),
		},
		{
			name:      "Diffuse scales with cosine",
			material:  NewMaterial(white, core.Vec3{}, 1),
			ray:       core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)),
			toLight:   core.NewVec3(1, 0, 1).Normalize(),
			intensity: core.NewVec3(2, 2, 2),
			expected:  core.Splat(2 / math.Sqrt2),
		},
		{
			name:      "Light below surface contributes nothing",
			material:  NewMaterial(white, white, 10),
			ray:       core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)),
			toLight:   core.NewVec3(0, 0, -1),
			intensity: white,
			expected:  core.Vec3{},
		},
		{
			name:      "Mirror direction gives full specular",
			material:  NewMaterial(core.Vec3{}, core.NewVec3(0.3, 0.6, 0.9), 32),
			ray:       core.NewRay(core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, -1)),
			toLight:   core.NewVec3(1, 0, 1).Normalize(),
			intensity: white,
			expected:  core.NewVec3(0.3, 0.6, 0.9),
		},
		{
			name:      "Colored light multiplies channel-wise",
			material:  NewMaterial(core.NewVec3(1, 0.5, 0), core.Vec3{}, 1),
			ray:       core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)),
			toLight:   normal,
			intensity: core.NewVec3(0.5, 1, 1),
			expected:  core.NewVec3(0.5, 0.5, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.material.Shade(tt.ray, normal, tt.toLight, tt.intensity)
			if !vecNear(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_ShadeNeverNegative(t *testing.T) {
	m := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 3)
	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	for _, toLight := range []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0).Normalize(),
		core.NewVec3(-1, -0.1, 0).Normalize(),
	} {
		got := m.Shade(ray, normal, toLight, core.NewVec3(1, 1, 1))
		if got.X < 0 || got.Y < 0 || got.Z < 0 {
			t.Errorf("Expected non-negative contribution for %v, got %v", toLight, got)
		}
	}
}
