package renderer

// Options holds the command line configuration of a render.
// It is built once before rendering and never modified afterwards.
type Options struct {
	// Files
	InputFile   string
	OutputFile  string
	NormalsFile string
	DepthFile   string

	// Frame
	Width    int
	Height   int
	DepthMin float64
	DepthMax float64
	Bounces  int
	Shadows  bool

	// Lens
	DepthOfField bool
	Aperture     float64
	FocalLength  float64
	Chromatic    bool

	// Sampling
	Jitter bool
	Filter bool
	Seed   int64
}

// DefaultOptions returns the defaults used when a flag is not given
func DefaultOptions() Options {
	return Options{
		Width:       100,
		Height:      100,
		DepthMin:    0,
		DepthMax:    1,
		Bounces:     0,
		Aperture:    3,
		FocalLength: 4,
		Seed:        42,
	}
}

// Mode names the per-pixel rendering path selected by the options
func (o Options) Mode() string {
	switch {
	case o.Chromatic:
		return "chromatic"
	case o.DepthOfField:
		return "dof"
	default:
		return "plain"
	}
}

// HasDepthRange reports whether depth values are traced into the depth image
func (o Options) HasDepthRange() bool {
	return o.DepthMax != o.DepthMin
}
