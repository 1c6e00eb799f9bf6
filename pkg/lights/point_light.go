package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits uniformly from a single position with quadratic falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
	Falloff  float64 // Attenuation is 1 / (1 + Falloff·d²)
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, falloff float64) *PointLight {
	return &PointLight{
		Position: position,
		Color:    color,
		Falloff:  falloff,
	}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate returns direction, attenuated intensity and distance toward the light
func (pl *PointLight) Illuminate(point core.Vec3) Illumination {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()

	return Illumination{
		Direction: toLight.Normalize(),
		Intensity: pl.Color.Multiply(1 / (1 + pl.Falloff*distance*distance)),
		Distance:  distance,
	}
}
