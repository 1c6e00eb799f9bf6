package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays from normalized image-plane coordinates in [-1,1]
type Camera interface {
	GenerateRay(p core.Vec2) core.Ray
	GetTMin() float64
	DistanceToPixel(p core.Vec2) float64
	DistanceToImage() float64
	GetPointOnImagePlane(p core.Vec2) core.Vec3
}

// PixelToNDC maps pixel index i of n onto [-1,1]. A single pixel maps to 0.
func PixelToNDC(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return 2*(float64(i)/float64(n-1)) - 1
}
