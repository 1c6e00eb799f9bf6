package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Background maps an escaping ray direction to a color
type Background interface {
	Color(direction core.Vec3) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color returns the constant background color
func (b *SolidBackground) Color(direction core.Vec3) core.Vec3 {
	return b.Value
}

// GradientBackground blends vertically between two colors
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Color returns a gradient color based on ray direction
func (b *GradientBackground) Color(direction core.Vec3) core.Vec3 {
	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (direction.Normalize().Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
