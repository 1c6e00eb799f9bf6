package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents the infinite plane of points P with Normal·P = Offset
type Plane struct {
	Normal   core.Vec3 // Unit normal vector
	Offset   float64   // Signed distance from the origin along Normal
	Material *material.Material
}

// NewPlane creates a new plane
func NewPlane(normal core.Vec3, offset float64, material *material.Material) *Plane {
	return &Plane{
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Offset:   offset,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < degenerateEpsilon {
		return NoHit(), false
	}

	t := -(-p.Offset + p.Normal.Dot(ray.Origin)) / denominator
	if t <= tMin || t >= tMax {
		return NoHit(), false
	}

	return Hit{
		T:        t,
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
