package renderer

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

func TestImage_ToRGBAFlipsAndClamps(t *testing.T) {
	img := NewImage(1, 2)
	img.SetPixel(0, 0, core.NewVec3(2, -1, 0.5)) // bottom
	img.SetPixel(0, 1, core.NewVec3(0, 0, 1))    // top

	rgba := img.ToRGBA()

	top := rgba.RGBAAt(0, 0)
	if top.R != 0 || top.G != 0 || top.B != 255 {
		t.Errorf("Expected top row first, got %v", top)
	}
	bottom := rgba.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.G != 0 || bottom.B != 127 {
		t.Errorf("Expected clamped bottom pixel (255,0,127), got %v", bottom)
	}
}

func TestImage_SaveFormats(t *testing.T) {
	img := NewImage(3, 2)
	img.SetPixel(0, 0, core.NewVec3(1, 0, 0))
	img.SetPixel(2, 1, core.NewVec3(0, 0, 1))

	for _, name := range []string{"out.png", "out.bmp", "out.tif", "out.TIFF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := img.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			data, err := loaders.LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if data.Width != 3 || data.Height != 2 {
				t.Fatalf("Expected 3x2, got %dx%d", data.Width, data.Height)
			}
			if data.At(0, 0) != core.NewVec3(1, 0, 0) {
				t.Errorf("Expected red at bottom-left, got %v", data.At(0, 0))
			}
			if data.At(2, 1) != core.NewVec3(0, 0, 1) {
				t.Errorf("Expected blue at top-right, got %v", data.At(2, 1))
			}
		})
	}
}

func TestImage_UnsupportedFormat(t *testing.T) {
	img := NewImage(1, 1)
	err := img.Save(filepath.Join(t.TempDir(), "out.jpg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, "gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat from Encode, got %v", err)
	}
}

func TestImage_Encode(t *testing.T) {
	img := NewImage(2, 2)
	var buf bytes.Buffer
	if err := img.Encode(&buf, "png"); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 2 {
		t.Errorf("Unexpected bounds %v", decoded.Bounds())
	}
}

func TestImage_FilterUniform(t *testing.T) {
	img := NewImage(4, 3)
	for i := range img.Pixels {
		img.Pixels[i] = core.NewVec3(0.25, 0.5, 0.75)
	}

	filtered := img.Filter()
	for i, p := range filtered.Pixels {
		if p.Subtract(core.NewVec3(0.25, 0.5, 0.75)).Length() > 1e-12 {
			t.Errorf("pixel %d: uniform image should be unchanged, got %v", i, p)
		}
	}
}

func TestImage_FilterImpulse(t *testing.T) {
	img := NewImage(5, 5)
	img.SetPixel(2, 2, core.Splat(1))

	filtered := img.Filter()

	expected := map[[2]int]float64{
		{2, 2}: 0.25,
		{1, 2}: 0.125,
		{2, 3}: 0.125,
		{1, 1}: 0.0625,
		{3, 3}: 0.0625,
		{0, 0}: 0,
		{4, 2}: 0,
	}
	for pos, want := range expected {
		if got := filtered.GetPixel(pos[0], pos[1]).X; got != want {
			t.Errorf("pixel %v: expected %v, got %v", pos, want, got)
		}
	}

	// The source image is left untouched
	if img.GetPixel(2, 2) != core.Splat(1) {
		t.Error("Filter should not modify the source image")
	}
}
