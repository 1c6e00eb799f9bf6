package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if opts != renderer.DefaultOptions() {
		t.Errorf("Expected defaults, got %+v", opts)
	}
	if opts.Width != 100 || opts.Height != 100 || opts.Aperture != 3 || opts.FocalLength != 4 {
		t.Errorf("Unexpected default values %+v", opts)
	}
}

func TestParseArgs_AllFlags(t *testing.T) {
	args := strings.Fields("-input scene.txt -output out.png -normals n.png -size 320 240 " +
		"-depth 8 18 d.png -bounces 4 -shadows -chrom -jitter -filter -seed 7")

	opts, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}

	expected := renderer.DefaultOptions()
	expected.InputFile = "scene.txt"
	expected.OutputFile = "out.png"
	expected.NormalsFile = "n.png"
	expected.Width, expected.Height = 320, 240
	expected.DepthMin, expected.DepthMax, expected.DepthFile = 8, 18, "d.png"
	expected.Bounces = 4
	expected.Shadows = true
	expected.Chromatic = true
	expected.Jitter = true
	expected.Filter = true
	expected.Seed = 7

	if opts != expected {
		t.Errorf("Expected %+v, got %+v", expected, opts)
	}
	if opts.DepthOfField {
		t.Error("-chrom alone should not enable depth of field")
	}
}

func TestParseArgs_LensFlagsImplyDOF(t *testing.T) {
	tests := []struct {
		args     string
		aperture float64
		focal    float64
	}{
		{"-dof", 3, 4},
		{"-aperture 5", 5, 4},
		{"-focal_length 2.5", 3, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			opts, err := ParseArgs(strings.Fields(tt.args))
			if err != nil {
				t.Fatalf("ParseArgs failed: %v", err)
			}
			if !opts.DepthOfField {
				t.Error("Expected depth of field to be enabled")
			}
			if opts.Aperture != tt.aperture || opts.FocalLength != tt.focal {
				t.Errorf("Expected aperture %v focal %v, got %v %v", tt.aperture, tt.focal, opts.Aperture, opts.FocalLength)
			}
		})
	}
}

func TestParseArgs_UnknownArgument(t *testing.T) {
	_, err := ParseArgs(strings.Fields("-size 10 10 -bogus"))

	var unknown *UnknownArgumentError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownArgumentError, got %v", err)
	}
	if unknown.Index != 4 || unknown.Arg != "-bogus" {
		t.Errorf("Expected argument 4 '-bogus', got %d '%s'", unknown.Index, unknown.Arg)
	}
	if err.Error() != "Unknown command line argument 4: '-bogus'" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestParseArgs_MissingValue(t *testing.T) {
	for _, args := range []string{"-input", "-size 10", "-depth 1 2", "-bounces"} {
		t.Run(args, func(t *testing.T) {
			_, err := ParseArgs(strings.Fields(args))
			if !errors.Is(err, ErrMissingValue) {
				t.Errorf("Expected ErrMissingValue, got %v", err)
			}
		})
	}
}

func TestParseArgs_InvalidValues(t *testing.T) {
	for _, args := range []string{"-size ten 10", "-aperture wide", "-size 0 10", "-bounces -1"} {
		t.Run(args, func(t *testing.T) {
			if _, err := ParseArgs(strings.Fields(args)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
