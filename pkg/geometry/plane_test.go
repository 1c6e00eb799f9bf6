package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	// Floor at y = -1
	plane := NewPlane(core.NewVec3(0, 2, 0), -1, nil)

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		shouldHit    bool
		expectedT    float64
	}{
		{
			name:         "straight down",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, -1, 0),
			shouldHit:    true,
			expectedT:    1.0,
		},
		{
			name:         "oblique",
			rayOrigin:    core.NewVec3(0, 1, 0),
			rayDirection: core.NewVec3(1, -1, 0),
			shouldHit:    true,
			expectedT:    2.0,
		},
		{
			name:         "from below",
			rayOrigin:    core.NewVec3(0, -3, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			shouldHit:    true,
			expectedT:    2.0,
		},
		{
			name:         "parallel",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(1, 0, 0),
			shouldHit:    false,
		},
		{
			name:         "pointing away",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			shouldHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection), 0, math.Inf(1))
			if !tt.shouldHit {
				assertMiss(t, hit, isHit)
				return
			}
			assertHitT(t, hit, isHit, tt.expectedT)
			// The plane's normal is fixed regardless of the side hit
			assertVecNear(t, "normal", core.NewVec3(0, 1, 0), hit.Normal)
		})
	}
}

func TestPlane_Intersect_TMinIsExclusive(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 1), 0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	hit, isHit := plane.Intersect(ray, 1, math.Inf(1))
	assertMiss(t, hit, isHit)

	hit, isHit = plane.Intersect(ray, 0.999, math.Inf(1))
	assertHitT(t, hit, isHit, 1)
}
