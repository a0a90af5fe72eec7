package imagewriter

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// ImageWriter is an in-memory RGB canvas that renders are written into and
// that can be saved as a PNG file. Colors are in 0..255 radiance units and
// are clamped when written. Concurrent WritePixel calls are safe as long as
// they target different pixels.
type ImageWriter struct {
	path string
	dc   *gg.Context
	im   *image.RGBA // gg's backing image, written directly per pixel
}

// NewImageWriter creates a black width×height canvas that Save writes to path.
// A path without an extension gets ".png".
func NewImageWriter(path string, width, height int) (*ImageWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	im, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas type %T", dc.Image())
	}

	return &ImageWriter{path: path, dc: dc, im: im}, nil
}

// Width returns the canvas width in pixels
func (iw *ImageWriter) Width() int {
	return iw.dc.Width()
}

// Height returns the canvas height in pixels
func (iw *ImageWriter) Height() int {
	return iw.dc.Height()
}

// Path returns where Save writes the image
func (iw *ImageWriter) Path() string {
	return iw.path
}

// WritePixel sets the pixel at column x, row y
func (iw *ImageWriter) WritePixel(x, y int, c core.Vec3) {
	r, g, b := toRGB255(c)
	iw.im.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
}

// Image returns the canvas
func (iw *ImageWriter) Image() image.Image {
	return iw.dc.Image()
}

// Save writes the canvas as a PNG file, creating missing directories
func (iw *ImageWriter) Save() error {
	if dir := filepath.Dir(iw.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := iw.dc.SavePNG(iw.path); err != nil {
		return fmt.Errorf("saving %s: %w", iw.path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w
func (iw *ImageWriter) EncodePNG(w io.Writer) error {
	return iw.dc.EncodePNG(w)
}

// toRGB255 clamps each channel to [0, 255] and rounds it to an 8-bit value
func toRGB255(v core.Vec3) (int, int, int) {
	c := v.Clamp(0, 255)
	return int(math.Round(c.X)), int(math.Round(c.Y)), int(math.Round(c.Z))
}
