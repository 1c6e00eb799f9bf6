package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene is the read-only view of a scene the integrator traces against.
// It is satisfied by *scene.Scene.
type Scene interface {
	GetGroup() geometry.Primitive
	GetLights() []lights.Light
	GetAmbientLight() core.Vec3
	GetBackgroundColor(direction core.Vec3) core.Vec3
}

// RayStats counts the rays traced by an integrator
type RayStats struct {
	Camera     int64 // Rays handed to TraceRay (primary and lens rays)
	Shadow     int64 // Shadow rays cast toward lights
	Occluded   int64 // Shadow rays that found an occluder
	Reflection int64 // Mirror reflection rays
	Hits       int64 // Camera and reflection rays that hit geometry
	Misses     int64 // Camera and reflection rays that returned the background
}

// Total returns the number of rays of every kind
func (s RayStats) Total() int64 {
	return s.Camera + s.Shadow + s.Reflection
}

// Add returns the element-wise sum of two stats records
func (s RayStats) Add(other RayStats) RayStats {
	return RayStats{
		Camera:     s.Camera + other.Camera,
		Shadow:     s.Shadow + other.Shadow,
		Occluded:   s.Occluded + other.Occluded,
		Reflection: s.Reflection + other.Reflection,
		Hits:       s.Hits + other.Hits,
		Misses:     s.Misses + other.Misses,
	}
}
