package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ShadowBias is the minimum t for shadow and reflection rays leaving a surface
const ShadowBias = 0.01

// WhittedIntegrator implements recursive ray tracing with Phong shading,
// hard shadows and mirror reflections
type WhittedIntegrator struct {
	scene Scene
	stats RayStats
}

// NewWhittedIntegrator creates a new Whitted integrator for the given scene
func NewWhittedIntegrator(scene Scene) *WhittedIntegrator {
	return &WhittedIntegrator{scene: scene}
}

// TraceRay returns the color seen along ray and the closest hit, if any.
// bounces is the number of mirror reflections still allowed; 0 stops recursion.
func (w *WhittedIntegrator) TraceRay(ray core.Ray, tMin float64, bounces int) (core.Vec3, geometry.Hit) {
	w.stats.Camera++
	return w.trace(ray, tMin, bounces)
}

func (w *WhittedIntegrator) trace(ray core.Ray, tMin float64, bounces int) (core.Vec3, geometry.Hit) {
	hit, isHit := w.scene.GetGroup().Intersect(ray, tMin, geometry.NoHit().T)
	if !isHit {
		w.stats.Misses++
		return w.scene.GetBackgroundColor(ray.Direction), geometry.NoHit()
	}
	w.stats.Hits++

	mat := hit.Material
	point := ray.At(hit.T)

	// Ambient term
	color := w.scene.GetAmbientLight().MultiplyVec(mat.DiffuseColor)

	// Direct lighting from every unoccluded light
	for _, light := range w.scene.GetLights() {
		illum := light.Illuminate(point)
		if w.occluded(point, illum) {
			continue
		}
		color = color.Add(mat.Shade(ray, hit.Normal, illum.Direction, illum.Intensity))
	}

	// Mirror reflection
	if bounces > 0 {
		w.stats.Reflection++
		reflected := core.NewRay(point, ray.Direction.Normalize().Reflect(hit.Normal))
		reflectedColor, _ := w.trace(reflected, ShadowBias, bounces-1)
		color = color.Add(reflectedColor.MultiplyVec(mat.SpecularColor))
	}

	return color, hit
}

// occluded reports whether anything lies between point and the light
func (w *WhittedIntegrator) occluded(point core.Vec3, illum lights.Illumination) bool {
	w.stats.Shadow++
	shadowRay := core.NewRay(point, illum.Direction)
	if _, blocked := w.scene.GetGroup().Intersect(shadowRay, ShadowBias, illum.Distance); blocked {
		w.stats.Occluded++
		return true
	}
	return false
}

// Stats returns the ray counts accumulated since creation or the last ResetStats
func (w *WhittedIntegrator) Stats() RayStats {
	return w.stats
}

// ResetStats clears the ray counters
func (w *WhittedIntegrator) ResetStats() {
	w.stats = RayStats{}
}
