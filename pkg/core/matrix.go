package core

import "github.com/go-gl/mathgl/mgl64"

// ToMgl converts v into a mathgl vector
func (v Vec3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector into a Vec3
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// TransformPoint applies the affine matrix m to the point p (w = 1)
func TransformPoint(m mgl64.Mat4, p Vec3) Vec3 {
	return FromMgl(m.Mul4x1(p.ToMgl().Vec4(1)).Vec3())
}

// TransformDirection applies the linear part of m to the direction d (w = 0)
func TransformDirection(m mgl64.Mat4, d Vec3) Vec3 {
	return FromMgl(m.Mul4x1(d.ToMgl().Vec4(0)).Vec3())
}

// TransformRay maps both the origin and direction of r through m.
// The direction is left unnormalized so that t values are preserved.
func TransformRay(m mgl64.Mat4, r Ray) Ray {
	return NewRay(TransformPoint(m, r.Origin), TransformDirection(m, r.Direction))
}
