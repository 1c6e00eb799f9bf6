package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle with per-vertex shading normals
type Triangle struct {
	Vertices [3]core.Vec3
	Normals  [3]core.Vec3
	Material *material.Material
}

// NewTriangle creates a smooth-shaded triangle from three vertices and their normals
func NewTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, material *material.Material) *Triangle {
	return &Triangle{
		Vertices: [3]core.Vec3{v0, v1, v2},
		Normals:  [3]core.Vec3{n0, n1, n2},
		Material: material,
	}
}

// NewFlatTriangle creates a triangle whose vertex normals all equal the face normal
func NewFlatTriangle(v0, v1, v2 core.Vec3, material *material.Material) *Triangle {
	normal := FaceNormal(v0, v1, v2)
	return NewTriangle(v0, v1, v2, normal, normal, normal, material)
}

// FaceNormal returns the unit normal of the triangle (v0, v1, v2) by the right-hand rule
func FaceNormal(v0, v1, v2 core.Vec3) core.Vec3 {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

// Intersect solves o + t·d = v0 + β(v1-v0) + γ(v2-v0) for (β, γ, t)
func (tr *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	v0 := tr.Vertices[0]

	system := mgl64.Mat3FromCols(
		v0.Subtract(tr.Vertices[1]).ToMgl(),
		v0.Subtract(tr.Vertices[2]).ToMgl(),
		ray.Direction.ToMgl(),
	)

	// Ray lies in the triangle's plane or the triangle is degenerate
	if math.Abs(system.Det()) < degenerateEpsilon {
		return NoHit(), false
	}

	solution := system.Inv().Mul3x1(v0.Subtract(ray.Origin).ToMgl())
	beta, gamma, t := solution[0], solution[1], solution[2]
	alpha := 1 - beta - gamma

	if beta < 0 || gamma < 0 || alpha < 0 {
		return NoHit(), false
	}
	if t <= tMin || t >= tMax {
		return NoHit(), false
	}

	normal := tr.Normals[0].Multiply(alpha).
		Add(tr.Normals[1].Multiply(beta)).
		Add(tr.Normals[2].Multiply(gamma))

	return Hit{
		T:        t,
		Normal:   normal.Normalize(),
		Material: tr.Material,
	}, true
}
