package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// FrameStats contains statistics about a rendered frame
type FrameStats struct {
	Width       int
	Height      int
	Mode        string // "plain", "dof" or "chromatic"
	LensSamples int    // Lens samples per pass, 1 in plain mode
	Passes      int    // Passes per pixel, 3 for chromatic aberration
	Rays        integrator.RayStats
	RenderTime  time.Duration
}

// TotalPixels returns the number of pixels in the frame
func (s FrameStats) TotalPixels() int {
	return s.Width * s.Height
}

// RaysPerPixel returns the average number of rays of every kind per pixel
func (s FrameStats) RaysPerPixel() float64 {
	if s.TotalPixels() == 0 {
		return 0
	}
	return float64(s.Rays.Total()) / float64(s.TotalPixels())
}

// RaysPerSecond returns the tracing throughput
func (s FrameStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Rays.Total()) / s.RenderTime.Seconds()
}
