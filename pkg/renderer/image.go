package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned when an output file extension has no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// PixelSink receives one color per pixel, with (0,0) at the bottom-left
type PixelSink interface {
	SetPixel(x, y int, c core.Vec3)
}

// Image is a floating point RGB raster with its origin at the bottom-left corner
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// SetPixel stores the color at (x, y)
func (img *Image) SetPixel(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// GetPixel returns the color at (x, y)
func (img *Image) GetPixel(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// ToRGBA converts the image to 8-bit RGBA, clamping each channel to [0,1]
// and flipping rows so the top row comes first
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Height - 1 - y
		for x := 0; x < img.Width; x++ {
			c := img.GetPixel(x, y).Clamp(0, 1)
			out.SetRGBA(x, row, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return out
}

// Encode writes the image in the named format: "png", "bmp" or "tiff"
func (img *Image) Encode(w io.Writer, format string) error {
	rgba := img.ToRGBA()
	switch format {
	case "png":
		return png.Encode(w, rgba)
	case "bmp":
		return bmp.Encode(w, rgba)
	case "tiff":
		return tiff.Encode(w, rgba, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// FormatForPath returns the encoder name for a file extension
func FormatForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes the image to path, choosing the encoder from the extension
func (img *Image) Save(path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := img.Encode(file, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// gaussian3x3 is the separable 1-2-1 kernel
var gaussian3x3 = [3]float64{0.25, 0.5, 0.25}

// Filter returns a copy blurred with a 3x3 Gaussian kernel. Edge pixels
// reuse their nearest neighbor inside the image.
func (img *Image) Filter() *Image {
	horizontal := NewImage(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var sum core.Vec3
			for k, w := range gaussian3x3 {
				sum = sum.Add(img.GetPixel(clampIndex(x+k-1, img.Width), y).Multiply(w))
			}
			horizontal.SetPixel(x, y, sum)
		}
	}

	out := NewImage(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var sum core.Vec3
			for k, w := range gaussian3x3 {
				sum = sum.Add(horizontal.GetPixel(x, clampIndex(y+k-1, img.Height)).Multiply(w))
			}
			out.SetPixel(x, y, sum)
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
