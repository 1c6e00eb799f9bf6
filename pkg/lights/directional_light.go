package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along Direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels
	Color     core.Vec3
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Color:     color,
	}
}

// Type returns the light type
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate returns the same direction and intensity for every point
func (dl *DirectionalLight) Illuminate(point core.Vec3) Illumination {
	return Illumination{
		Direction: dl.Direction.Negate(),
		Intensity: dl.Color,
		Distance:  math.Inf(1),
	}
}
