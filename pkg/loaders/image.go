package loaders

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageData holds a decoded image as colors in [0,1].
// Pixels are stored row by row starting at the bottom-left corner,
// the same orientation the renderer writes them in.
type ImageData struct {
	Width  int
	Height int
	Format string
	Pixels []core.Vec3
}

// At returns the color at (x, y) with y counted from the bottom row
func (d *ImageData) At(x, y int) core.Vec3 {
	return d.Pixels[y*d.Width+x]
}

// Mean returns the average color over all pixels
func (d *ImageData) Mean() core.Vec3 {
	var sum core.Vec3
	for _, p := range d.Pixels {
		sum = sum.Add(p)
	}
	if len(d.Pixels) == 0 {
		return sum
	}
	return sum.Multiply(1.0 / float64(len(d.Pixels)))
}

// LoadImage decodes a PNG, BMP or TIFF image
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		row := height - 1 - y
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[row*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}
