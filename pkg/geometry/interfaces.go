package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Primitive interface for objects that can be hit by rays.
// Intersect reports the nearest intersection with tMin < t < tMax.
type Primitive interface {
	Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool)
}
