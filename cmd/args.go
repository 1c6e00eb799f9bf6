package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrMissingValue is returned when a flag is the last argument but expects a value
var ErrMissingValue = errors.New("missing value for flag")

// UnknownArgumentError reports an argument that is not a recognized flag.
// Index counts from 1, as in a program's argv.
type UnknownArgumentError struct {
	Index int
	Arg   string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("Unknown command line argument %d: '%s'", e.Index, e.Arg)
}

// argReader walks the argument list, handing out flag values
type argReader struct {
	args []string
	pos  int
}

func (r *argReader) value(flag string) (string, error) {
	r.pos++
	if r.pos >= len(r.args) {
		return "", fmt.Errorf("%w %s", ErrMissingValue, flag)
	}
	return r.args[r.pos], nil
}

func (r *argReader) float(flag string) (float64, error) {
	v, err := r.value(flag)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q for %s", v, flag)
	}
	return f, nil
}

func (r *argReader) int(flag string) (int, error) {
	v, err := r.value(flag)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q for %s", v, flag)
	}
	return i, nil
}

// ParseArgs builds render options from single-dash flags such as
// "-size 200 100" or "-depth 8 18 depth.png". Flags not given keep their defaults.
func ParseArgs(args []string) (renderer.Options, error) {
	opts := renderer.DefaultOptions()
	r := &argReader{args: args}

	var err error
	for ; r.pos < len(args); r.pos++ {
		flag := args[r.pos]
		switch flag {
		// Files
		case "-input":
			opts.InputFile, err = r.value(flag)
		case "-output":
			opts.OutputFile, err = r.value(flag)
		case "-normals":
			opts.NormalsFile, err = r.value(flag)
		case "-size":
			if opts.Width, err = r.int(flag); err == nil {
				opts.Height, err = r.int(flag)
			}

		// Rendering
		case "-depth":
			if opts.DepthMin, err = r.float(flag); err != nil {
				break
			}
			if opts.DepthMax, err = r.float(flag); err != nil {
				break
			}
			opts.DepthFile, err = r.value(flag)
		case "-bounces":
			opts.Bounces, err = r.int(flag)
		case "-shadows":
			opts.Shadows = true

		// Depth of field
		case "-dof":
			opts.DepthOfField = true
		case "-aperture":
			opts.Aperture, err = r.float(flag)
			opts.DepthOfField = true
		case "-focal_length":
			opts.FocalLength, err = r.float(flag)
			opts.DepthOfField = true
		case "-chrom":
			opts.Chromatic = true

		// Sampling
		case "-jitter":
			opts.Jitter = true
		case "-filter":
			opts.Filter = true
		case "-seed":
			var seed int
			seed, err = r.int(flag)
			opts.Seed = int64(seed)

		default:
			return opts, &UnknownArgumentError{Index: r.pos + 1, Arg: flag}
		}

		if err != nil {
			return opts, err
		}
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Bounces < 0 {
		return opts, fmt.Errorf("bounces must be non-negative, got %d", opts.Bounces)
	}
	return opts, nil
}
