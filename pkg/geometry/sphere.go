package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	// Ray origin in sphere coordinates
	origin := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(origin)
	c := origin.LengthSquared() - s.Radius*s.Radius

	tNear, tFar, ok := solveQuadratic(a, b, c)
	if !ok {
		return NoHit(), false
	}

	t, ok := selectRoot(tNear, tFar, tMin, tMax)
	if !ok {
		return NoHit(), false
	}

	// Outward normal (from center to hit point)
	return Hit{
		T:        t,
		Normal:   ray.At(t).Subtract(s.Center).Normalize(),
		Material: s.Material,
	}, true
}
