package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

const (
	// LensSampleSpacing is the image-plane distance between neighboring lens samples
	LensSampleSpacing = 0.1

	// MaxJitter bounds the per-axis random offset added to each lens sample
	MaxJitter = 0.1
)

// Refractive indices of crown glass used for chromatic aberration.
// The configured focal length is taken to be the green one.
const (
	RefractiveIndexRed   = 1.50917
	RefractiveIndexGreen = 1.51534
	RefractiveIndexBlue  = 1.51690

	// ChromaticAmplification exaggerates the red and blue focal shifts
	ChromaticAmplification = 20.0
)

// Tracer traces a single ray and reports the closest hit
type Tracer interface {
	TraceRay(ray core.Ray, tMin float64, bounces int) (core.Vec3, geometry.Hit)
}

// LensSampleGridSize returns the side length of the square lens sample grid for an aperture
func LensSampleGridSize(aperture float64) int {
	half := int(math.Max(0, math.Floor((aperture-1)/2)))
	return 2*half + 1
}

// LensSamples returns the image-plane points of a square grid centered on the
// pixel at ndc, ordered by x offset then y offset
func LensSamples(camera Camera, ndc core.Vec2, aperture float64) []core.Vec3 {
	half := (LensSampleGridSize(aperture) - 1) / 2

	samples := make([]core.Vec3, 0, (2*half+1)*(2*half+1))
	for i := -half; i <= half; i++ {
		for j := -half; j <= half; j++ {
			offset := core.NewVec2(ndc.X+float64(i)*LensSampleSpacing, ndc.Y+float64(j)*LensSampleSpacing)
			samples = append(samples, camera.GetPointOnImagePlane(offset))
		}
	}
	return samples
}

// ChromaticFocalLengths returns the effective focal lengths of the red, green
// and blue passes for a green focal length
func ChromaticFocalLengths(focalLength float64) (red, green, blue float64) {
	focalR := RefractiveIndexGreen / RefractiveIndexRed * focalLength
	focalB := RefractiveIndexGreen / RefractiveIndexBlue * focalLength

	red = (focalR-focalLength)*ChromaticAmplification + focalLength
	blue = (focalB-focalLength)*ChromaticAmplification + focalLength
	return red, focalLength, blue
}

// DOFSampler approximates depth of field by averaging rays from a grid of
// lens samples through a common focal point
type DOFSampler struct {
	tracer Tracer
	random *rand.Rand // nil disables jitter
}

// NewDOFSampler creates a depth of field sampler. Jitter is enabled when random is non-nil.
func NewDOFSampler(tracer Tracer, random *rand.Rand) *DOFSampler {
	return &DOFSampler{tracer: tracer, random: random}
}

// TraceRayDOF averages the colors of rays from each lens sample toward the
// point at focalLength beyond the image plane along ray. The returned hit is
// that of the middle sample.
func (s *DOFSampler) TraceRayDOF(ray core.Ray, distToPixel, distToImage, focalLength float64,
	samples []core.Vec3, tMin float64, bounces int) (core.Vec3, geometry.Hit) {

	focalPoint := ray.At(distToPixel * (distToImage + focalLength) / distToImage)

	hit := geometry.NoHit()
	if len(samples) == 0 {
		return core.Vec3{}, hit
	}

	mid := (len(samples) - 1) / 2
	var brightness core.Vec3
	for i, sample := range samples {
		point := sample.Add(s.jitter())
		lensRay := core.NewRay(point, focalPoint.Subtract(point).Normalize())

		color, sampleHit := s.tracer.TraceRay(lensRay, tMin, bounces)
		brightness = brightness.Add(color)
		if i == mid {
			hit = sampleHit
		}
	}

	return brightness.Multiply(1.0 / float64(len(samples))), hit
}

func (s *DOFSampler) jitter() core.Vec3 {
	if s.random == nil {
		return core.Vec3{}
	}
	return core.NewVec3(
		s.random.Float64()*MaxJitter,
		s.random.Float64()*MaxJitter,
		s.random.Float64()*MaxJitter,
	)
}
