package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// degenerateEpsilon bounds denominators and determinants that are treated as zero
const degenerateEpsilon = 1e-12

// Hit contains information about a ray-object intersection
type Hit struct {
	T        float64            // Parameter t along the ray, +Inf when nothing was hit
	Normal   core.Vec3          // Unit surface normal at intersection
	Material *material.Material // Material of the hit object, owned by the scene
}

// NoHit returns the empty hit record used before any intersection is found
func NoHit() Hit {
	return Hit{T: math.Inf(1)}
}

// IsHit reports whether h holds a real intersection
func (h Hit) IsHit() bool {
	return !math.IsInf(h.T, 1)
}

// solveQuadratic returns the real roots of a·t² + b·t + c = 0 in ascending order
func solveQuadratic(a, b, c float64) (lo, hi float64, ok bool) {
	if math.Abs(a) < degenerateEpsilon {
		return 0, 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	lo = (-b - sqrtD) / (2 * a)
	hi = (-b + sqrtD) / (2 * a)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// selectRoot picks the smaller root if it is past tMin, otherwise the larger one.
// The chosen root must also be closer than tMax.
func selectRoot(lo, hi, tMin, tMax float64) (float64, bool) {
	t := lo
	if t <= tMin {
		t = hi
		if t <= tMin {
			return 0, false
		}
	}
	if t >= tMax {
		return 0, false
	}
	return t, true
}
