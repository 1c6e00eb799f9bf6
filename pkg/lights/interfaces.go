package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light interface for sources evaluated by local illumination
type Light interface {
	Type() LightType

	// Illuminate returns the incident light at point
	Illuminate(point core.Vec3) Illumination
}

// Illumination describes the light arriving at a shading point
type Illumination struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Intensity core.Vec3 // Incident intensity
	Distance  float64   // Distance to light, +Inf for lights at infinity
}
