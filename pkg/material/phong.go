package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes a Phong surface: diffuse and specular reflectance plus a shininess exponent.
// The specular color also weights mirror reflections in the recursive tracer.
type Material struct {
	DiffuseColor  core.Vec3
	SpecularColor core.Vec3
	Shininess     float64
}

// NewMaterial creates a new Phong material
func NewMaterial(diffuse, specular core.Vec3, shininess float64) *Material {
	return &Material{
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	}
}

// Shade returns the light reflected toward the ray origin from a single light.
// normal and dirToLight must be unit length. Both lobes are clamped at zero.
func (m *Material) Shade(ray core.Ray, normal, dirToLight, lightIntensity core.Vec3) core.Vec3 {
	// Diffuse term
	diffuse := math.Max(0, normal.Dot(dirToLight))
	color := lightIntensity.MultiplyVec(m.DiffuseColor).Multiply(diffuse)

	// Specular term: mirror the eye direction about the normal
	eyeDir := ray.Direction.Negate().Normalize()
	eyeReflection := eyeDir.Negate().Add(normal.Multiply(2 * eyeDir.Dot(normal)))
	specular := math.Max(0, eyeReflection.Dot(dirToLight))

	return color.Add(lightIntensity.MultiplyVec(m.SpecularColor).Multiply(math.Pow(specular, m.Shininess)))
}
