package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Renderer drives the per-pixel loop over a scene
type Renderer struct {
	camera  Camera
	opts    Options
	tracer  *integrator.WhittedIntegrator
	sampler *DOFSampler
}

// Frame holds the three images produced by a render
type Frame struct {
	Color   *Image
	Normals *Image
	Depth   *Image // left black when the depth range is empty
}

// NewRenderer creates a renderer for the scene with the given options
func NewRenderer(sc *scene.Scene, opts Options) (*Renderer, error) {
	if sc == nil || sc.Camera == nil {
		return nil, errors.New("scene has no camera")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}

	tracer := integrator.NewWhittedIntegrator(sc)

	var random *rand.Rand
	if opts.Jitter {
		random = rand.New(rand.NewSource(opts.Seed))
	}

	return &Renderer{
		camera:  sc.Camera,
		opts:    opts,
		tracer:  tracer,
		sampler: NewDOFSampler(tracer, random),
	}, nil
}

// Render traces every pixel and writes color, normal and depth to the sinks.
// A nil sink is skipped; depth is only written when the depth range is non-empty.
func (r *Renderer) Render(color, normals, depth PixelSink) FrameStats {
	start := time.Now()
	r.tracer.ResetStats()

	w, h := r.opts.Width, r.opts.Height
	depthRange := r.opts.DepthMax - r.opts.DepthMin

	for y := 0; y < h; y++ {
		ndcY := PixelToNDC(y, h)
		for x := 0; x < w; x++ {
			ndc := core.NewVec2(PixelToNDC(x, w), ndcY)

			c, hit := r.renderPixel(ndc)

			if color != nil {
				color.SetPixel(x, y, c)
			}
			if normals != nil {
				normals.SetPixel(x, y, hit.Normal.AddScalar(1).Multiply(0.5))
			}
			if depth != nil && r.opts.HasDepthRange() {
				depth.SetPixel(x, y, core.Splat((hit.T-r.opts.DepthMin)/depthRange))
			}
		}
		logger.Debugf("row %d/%d done", y+1, h)
	}

	stats := FrameStats{
		Width:       w,
		Height:      h,
		Mode:        r.opts.Mode(),
		LensSamples: 1,
		Passes:      1,
		Rays:        r.tracer.Stats(),
		RenderTime:  time.Since(start),
	}
	if stats.Mode != "plain" {
		stats.LensSamples = LensSampleGridSize(r.opts.Aperture) * LensSampleGridSize(r.opts.Aperture)
	}
	if stats.Mode == "chromatic" {
		stats.Passes = 3
	}
	return stats
}

// RenderFrame renders into new images
func (r *Renderer) RenderFrame() (*Frame, FrameStats) {
	frame := &Frame{
		Color:   NewImage(r.opts.Width, r.opts.Height),
		Normals: NewImage(r.opts.Width, r.opts.Height),
		Depth:   NewImage(r.opts.Width, r.opts.Height),
	}

	var depth PixelSink
	if r.opts.HasDepthRange() {
		depth = frame.Depth
	}
	stats := r.Render(frame.Color, frame.Normals, depth)
	return frame, stats
}

// renderPixel selects the plain, depth of field or chromatic path for one pixel
func (r *Renderer) renderPixel(ndc core.Vec2) (core.Vec3, geometry.Hit) {
	ray := r.camera.GenerateRay(ndc)
	tMin := r.camera.GetTMin()

	switch r.opts.Mode() {
	case "chromatic":
		samples := LensSamples(r.camera, ndc, r.opts.Aperture)
		distToPixel := r.camera.DistanceToPixel(ndc)
		distToImage := r.camera.DistanceToImage()

		focalR, focalG, focalB := ChromaticFocalLengths(r.opts.FocalLength)
		logger.Debugf("chromatic focal lengths r=%.4f g=%.4f b=%.4f", focalR, focalG, focalB)

		colorG, hit := r.sampler.TraceRayDOF(ray, distToPixel, distToImage, focalG, samples, tMin, r.opts.Bounces)
		colorR, _ := r.sampler.TraceRayDOF(ray, distToPixel, distToImage, focalR, samples, tMin, r.opts.Bounces)
		colorB, _ := r.sampler.TraceRayDOF(ray, distToPixel, distToImage, focalB, samples, tMin, r.opts.Bounces)

		return core.NewVec3(colorR.X, colorG.Y, colorB.Z), hit

	case "dof":
		samples := LensSamples(r.camera, ndc, r.opts.Aperture)
		return r.sampler.TraceRayDOF(ray, r.camera.DistanceToPixel(ndc), r.camera.DistanceToImage(),
			r.opts.FocalLength, samples, tMin, r.opts.Bounces)

	default:
		return r.tracer.TraceRay(ray, tMin, r.opts.Bounces)
	}
}

// Save writes every image whose output path is set. The color image is
// filtered first when the Filter option is on.
func (f *Frame) Save(opts Options) error {
	if opts.OutputFile != "" {
		img := f.Color
		if opts.Filter {
			img = img.Filter()
		}
		if err := img.Save(opts.OutputFile); err != nil {
			return err
		}
		logger.Noticef("wrote color image to %s", opts.OutputFile)
	}

	if opts.NormalsFile != "" {
		if err := f.Normals.Save(opts.NormalsFile); err != nil {
			return err
		}
		logger.Noticef("wrote normals image to %s", opts.NormalsFile)
	}

	if opts.DepthFile != "" && f.Depth != nil {
		if !opts.HasDepthRange() {
			logger.Warningf("depth range %g..%g is empty, %s will be blank", opts.DepthMin, opts.DepthMax, opts.DepthFile)
		}
		if err := f.Depth.Save(opts.DepthFile); err != nil {
			return err
		}
		logger.Noticef("wrote depth image to %s", opts.DepthFile)
	}
	return nil
}
