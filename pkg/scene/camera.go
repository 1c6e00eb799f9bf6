package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PerspectiveCamera is a pinhole camera with an image plane at distance
// 1/tan(angle/2) in front of the center. Image-plane coordinates are
// normalized to [-1, 1] on both axes.
type PerspectiveCamera struct {
	Center     core.Vec3
	Direction  core.Vec3 // Unit view direction
	Up         core.Vec3 // Unit up vector, orthogonal to Direction
	Horizontal core.Vec3 // Unit right vector
	Angle      float64   // Field of view in radians

	imageDistance float64
}

// NewPerspectiveCamera creates a camera from a center, view direction, up hint and field of view in degrees
func NewPerspectiveCamera(center, direction, up core.Vec3, angleDegrees float64) *PerspectiveCamera {
	w := direction.Normalize()
	horizontal := w.Cross(up).Normalize()
	u := horizontal.Cross(w)
	angle := angleDegrees * math.Pi / 180.0

	return &PerspectiveCamera{
		Center:        center,
		Direction:     w,
		Up:            u,
		Horizontal:    horizontal,
		Angle:         angle,
		imageDistance: 1 / math.Tan(angle/2),
	}
}

// imagePlaneOffset returns the vector from the center to the image-plane point p
func (c *PerspectiveCamera) imagePlaneOffset(p core.Vec2) core.Vec3 {
	return c.Horizontal.Multiply(p.X).
		Add(c.Up.Multiply(p.Y)).
		Add(c.Direction.Multiply(c.imageDistance))
}

// GenerateRay returns the unit-direction primary ray through image point p
func (c *PerspectiveCamera) GenerateRay(p core.Vec2) core.Ray {
	return core.NewRay(c.Center, c.imagePlaneOffset(p).Normalize())
}

// GetTMin returns the minimum valid t for primary rays
func (c *PerspectiveCamera) GetTMin() float64 {
	return 0
}

// DistanceToPixel returns the distance from the center to image point p
func (c *PerspectiveCamera) DistanceToPixel(p core.Vec2) float64 {
	return c.imagePlaneOffset(p).Length()
}

// DistanceToImage returns the distance from the center to the image plane along the view direction
func (c *PerspectiveCamera) DistanceToImage() float64 {
	return c.imageDistance
}

// GetPointOnImagePlane returns the world position of image point p
func (c *PerspectiveCamera) GetPointOnImagePlane(p core.Vec2) core.Vec3 {
	return c.Center.Add(c.imagePlaneOffset(p))
}
