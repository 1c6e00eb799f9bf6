package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewConeScene creates a simple test scene with cones and a smooth-shaded triangle
func NewConeScene() *Scene {
	camera := NewPerspectiveCamera(
		core.NewVec3(0, 1.5, 6), // Camera position
		core.NewVec3(0, -0.15, -1),
		core.NewVec3(0, 1, 0),
		45,
	)

	s := NewScene(camera)
	s.AmbientLight = core.NewVec3(0.15, 0.15, 0.15)
	s.Background = NewSolidBackground(core.NewVec3(0.05, 0.05, 0.1))

	// Create materials
	gray := s.AddMaterial(material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.1, 0.1, 0.1), 1))
	red := s.AddMaterial(material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.4, 0.4, 0.4), 30))
	green := s.AddMaterial(material.NewMaterial(core.NewVec3(0.2, 0.8, 0.2), core.NewVec3(0.2, 0.2, 0.2), 10))

	s.Group.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, gray))

	// Central pointed cone, apex at y = 2
	s.Group.Add(geometry.NewCone(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 2, 0.8, red))

	// Smooth-shaded triangle behind the cone
	s.Group.Add(geometry.NewTriangle(
		core.NewVec3(-2.5, 0, -2),
		core.NewVec3(2.5, 0, -2),
		core.NewVec3(0, 3, -2.5),
		core.NewVec3(-0.3, 0, 1).Normalize(),
		core.NewVec3(0.3, 0, 1).Normalize(),
		core.NewVec3(0, 0.3, 1).Normalize(),
		green,
	))

	s.AddPointLight(core.NewVec3(2, 5, 4), core.NewVec3(0.9, 0.9, 0.9), 0)

	return s
}
