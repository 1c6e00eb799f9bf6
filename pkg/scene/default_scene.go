package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Built-in scene names accepted by NewBuiltinScene
const (
	BuiltinDefault = "default"
	BuiltinCones   = "cones"
)

// NewBuiltinScene returns the built-in scene with the given name
func NewBuiltinScene(name string) (*Scene, error) {
	switch name {
	case BuiltinDefault, "":
		return NewDefaultScene(), nil
	case BuiltinCones:
		return NewConeScene(), nil
	default:
		return nil, fmt.Errorf("unknown built-in scene %q", name)
	}
}

// NewDefaultScene creates a default scene with spheres, a mirror floor, and two lights
func NewDefaultScene() *Scene {
	camera := NewPerspectiveCamera(
		core.NewVec3(0, 1, 8),     // Camera position
		core.NewVec3(0, -0.1, -1), // Looking slightly down at the spheres
		core.NewVec3(0, 1, 0),     // Standard up direction
		35,
	)

	s := NewScene(camera)
	s.AmbientLight = core.NewVec3(0.1, 0.1, 0.1)
	s.Background = NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))

	// Create materials
	red := s.AddMaterial(material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.3, 0.3, 0.3), 20))
	blue := s.AddMaterial(material.NewMaterial(core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.6, 0.6, 0.6), 50))
	gold := s.AddMaterial(material.NewMaterial(core.NewVec3(0.6, 0.45, 0.1), core.NewVec3(0.8, 0.6, 0.2), 80))
	floor := s.AddMaterial(material.NewMaterial(core.NewVec3(0.4, 0.4, 0.4), core.NewVec3(0.2, 0.2, 0.2), 5))

	// Spheres resting on the floor
	s.Group.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, red))
	s.Group.Add(geometry.NewSphere(core.NewVec3(-2.2, -0.4, -1), 0.6, blue))

	// Ellipsoid through a transform
	s.Group.Add(geometry.NewTransform(
		mgl64.Translate3D(2.2, -0.3, -0.5).Mul4(mgl64.Scale3D(0.6, 0.7, 0.6)),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, gold),
	))

	// Ground plane at y = -1
	s.Group.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), -1, floor))

	s.AddDirectionalLight(core.NewVec3(-0.5, -1, -0.6), core.NewVec3(0.7, 0.7, 0.7))
	s.AddPointLight(core.NewVec3(3, 4, 4), core.NewVec3(0.6, 0.6, 0.6), 0.01)

	return s
}
