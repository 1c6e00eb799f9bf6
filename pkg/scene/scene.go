package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is treated as read-only once rendering starts.
type Scene struct {
	Camera       *PerspectiveCamera
	Group        *geometry.Group      // Root of the primitive graph
	Lights       []lights.Light       // Lights in the scene
	Materials    []*material.Material // Materials referenced by primitives
	AmbientLight core.Vec3
	Background   Background
}

// NewScene creates an empty scene with a black background
func NewScene(camera *PerspectiveCamera) *Scene {
	return &Scene{
		Camera:     camera,
		Group:      geometry.NewGroup(),
		Lights:     make([]lights.Light, 0),
		Materials:  make([]*material.Material, 0),
		Background: NewSolidBackground(core.Vec3{}),
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *PerspectiveCamera {
	return s.Camera
}

// GetGroup returns the root primitive
func (s *Scene) GetGroup() geometry.Primitive {
	return s.Group
}

// GetLights returns the scene's lights
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// GetAmbientLight returns the ambient light intensity
func (s *Scene) GetAmbientLight() core.Vec3 {
	return s.AmbientLight
}

// GetBackgroundColor returns the color seen by a ray leaving the scene along direction
func (s *Scene) GetBackgroundColor(direction core.Vec3) core.Vec3 {
	if s.Background == nil {
		return core.Vec3{}
	}
	return s.Background.Color(direction)
}

// AddMaterial registers a material and returns it for use by primitives
func (s *Scene) AddMaterial(m *material.Material) *material.Material {
	s.Materials = append(s.Materials, m)
	return m
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, color core.Vec3, falloff float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, falloff))
}

// AddDirectionalLight adds a directional light to the scene
func (s *Scene) AddDirectionalLight(direction, color core.Vec3) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, color))
}

// GetPrimitiveCount returns the total number of leaf primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.Group)
}

// countPrimitives counts leaves, descending through groups and transforms
func countPrimitives(p geometry.Primitive) int {
	switch obj := p.(type) {
	case *geometry.Group:
		count := 0
		for _, member := range obj.Members {
			count += countPrimitives(member)
		}
		return count
	case *geometry.Transform:
		return countPrimitives(obj.Child)
	case nil:
		return 0
	default:
		return 1
	}
}
