package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cone represents an infinite single-napped cone. The apex sits Height units
// from Center along Axis; the surface opens back toward Center with the
// half-angle given by Radius at that distance.
type Cone struct {
	Center   core.Vec3
	Axis     core.Vec3 // Unit vector from the base center toward the apex
	Height   float64
	Radius   float64
	Material *material.Material

	// Cached derived values
	apex      core.Vec3 // Tip of the cone
	down      core.Vec3 // Unit vector from apex toward the base
	cosTheta2 float64   // cos²(half-angle) = h² / (h² + r²)
}

// NewCone creates a new cone
func NewCone(center, axis core.Vec3, height, radius float64, material *material.Material) *Cone {
	axis = axis.Normalize()
	return &Cone{
		Center:    center,
		Axis:      axis,
		Height:    height,
		Radius:    radius,
		Material:  material,
		apex:      center.Add(axis.Multiply(height)),
		down:      axis.Negate(),
		cosTheta2: height * height / (height*height + radius*radius),
	}
}

// Intersect tests if a ray intersects with the cone surface
func (c *Cone) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	// Vector from apex to ray origin
	co := ray.Origin.Subtract(c.apex)

	dDotV := ray.Direction.Dot(c.down)
	coDotV := co.Dot(c.down)

	// (P-apex)·v = |P-apex| cosθ, squared and expanded in t
	a := dDotV*dDotV - ray.Direction.LengthSquared()*c.cosTheta2
	b := 2 * (dDotV*coDotV - ray.Direction.Dot(co)*c.cosTheta2)
	cc := coDotV*coDotV - co.LengthSquared()*c.cosTheta2

	if math.IsNaN(a) || math.IsNaN(cc) {
		return NoHit(), false
	}

	tNear, tFar, ok := solveQuadratic(a, b, cc)
	if !ok {
		return NoHit(), false
	}

	// Roots on the mirrored nappe above the apex are discarded
	nearOK := c.onNappe(ray.At(tNear))
	farOK := c.onNappe(ray.At(tFar))
	if !nearOK && !farOK {
		return NoHit(), false
	}
	if !nearOK {
		tNear = tFar
	}
	if !farOK {
		tFar = tNear
	}

	t, ok := selectRoot(tNear, tFar, tMin, tMax)
	if !ok {
		return NoHit(), false
	}

	// Approximation: radial direction from Center, not the analytic cone normal
	return Hit{
		T:        t,
		Normal:   ray.At(t).Subtract(c.Center).Normalize(),
		Material: c.Material,
	}, true
}

// onNappe reports whether point lies on the half of the double cone facing the base
func (c *Cone) onNappe(point core.Vec3) bool {
	return point.Subtract(c.apex).Dot(c.down) > 0
}
