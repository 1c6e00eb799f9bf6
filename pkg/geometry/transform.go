package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Transform places a child primitive in the world through a 4x4 affine matrix
type Transform struct {
	Matrix mgl64.Mat4
	Child  Primitive

	// Cached derived values
	inverse      mgl64.Mat4 // World to object space
	normalMatrix mgl64.Mat4 // Inverse-transpose, object normals to world
	singular     bool
}

// NewTransform wraps child with the object-to-world matrix m
func NewTransform(m mgl64.Mat4, child Primitive) *Transform {
	tr := &Transform{
		Matrix: m,
		Child:  child,
	}

	if math.Abs(m.Det()) < degenerateEpsilon {
		tr.singular = true
		return tr
	}

	tr.inverse = m.Inv()
	tr.normalMatrix = tr.inverse.Transpose()
	return tr
}

// Intersect maps the ray into object space and delegates to the child.
// The object-space direction is not renormalized, so t is valid in world space.
func (tr *Transform) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	if tr.singular {
		return NoHit(), false
	}

	hit, ok := tr.Child.Intersect(core.TransformRay(tr.inverse, ray), tMin, tMax)
	if !ok {
		return NoHit(), false
	}

	hit.Normal = core.TransformDirection(tr.normalMatrix, hit.Normal).Normalize()
	return hit, true
}
