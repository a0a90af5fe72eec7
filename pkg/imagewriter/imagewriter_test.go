package imagewriter

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

func mustWriter(t *testing.T, path string, width, height int) *ImageWriter {
	t.Helper()
	iw, err := NewImageWriter(path, width, height)
	if err != nil {
		t.Fatalf("NewImageWriter failed: %v", err)
	}
	return iw
}

func rgbAt(iw *ImageWriter, x, y int) color.RGBA {
	r, g, b, a := iw.Image().At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestNewImageWriter(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		width, height int
		wantErr       bool
		wantPath      string
	}{
		{"adds png extension", "images/out", 4, 3, false, "images/out.png"},
		{"keeps extension", "out.png", 4, 3, false, "out.png"},
		{"zero width", "out", 0, 3, true, ""},
		{"negative height", "out", 4, -1, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iw, err := NewImageWriter(tt.path, tt.width, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if iw.Path() != tt.wantPath {
				t.Errorf("Expected path %q, got %q", tt.wantPath, iw.Path())
			}
			if iw.Width() != tt.width || iw.Height() != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, iw.Width(), iw.Height())
			}
			if got := rgbAt(iw, 0, 0); got != (color.RGBA{0, 0, 0, 255}) {
				t.Errorf("Expected a black canvas, got %v", got)
			}
		})
	}
}

func TestWritePixel_Clamps(t *testing.T) {
	iw := mustWriter(t, "clamp", 3, 1)

	iw.WritePixel(0, 0, core.NewVec3(300, -20, 127.6))
	iw.WritePixel(1, 0, core.NewVec3(255, 200, 0))
	iw.WritePixel(2, 0, core.NewVec3(0.4, 0.5, 254.4))

	expected := []color.RGBA{
		{255, 0, 128, 255},
		{255, 200, 0, 255},
		{0, 1, 254, 255},
	}
	for x, want := range expected {
		if got := rgbAt(iw, x, 0); got != want {
			t.Errorf("Pixel %d: expected %v, got %v", x, want, got)
		}
	}
}

func TestWritePixel_ConcurrentRows(t *testing.T) {
	const width, height = 64, 48
	iw := mustWriter(t, "concurrent", width, height)

	var wg sync.WaitGroup
	for y := range height {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := range width {
				iw.WritePixel(x, y, core.NewVec3(float64(x), float64(y), 7))
			}
		}()
	}
	wg.Wait()

	for y := range height {
		for x := range width {
			want := color.RGBA{uint8(x), uint8(y), 7, 255}
			if got := rgbAt(iw, x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

// TestGridImage draws a yellow 800x500 image with a red grid of 50-pixel squares
func TestGridImage(t *testing.T) {
	const width, height, interval = 800, 500, 50
	path := filepath.Join(t.TempDir(), "images", "yellow_grid.png")
	iw := mustWriter(t, path, width, height)

	yellow := core.NewVec3(255, 255, 0)
	red := core.NewVec3(255, 0, 0)
	for x := range width {
		for y := range height {
			if x%interval == 0 || y%interval == 0 {
				iw.WritePixel(x, y, red)
			} else {
				iw.WritePixel(x, y, yellow)
			}
		}
	}

	if err := iw.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected the image file to exist: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding the saved image failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		t.Errorf("Expected %dx%d, got %dx%d", width, height, b.Dx(), b.Dy())
	}

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{50, 17, color.RGBA{255, 0, 0, 255}},
		{17, 450, color.RGBA{255, 0, 0, 255}},
		{25, 25, color.RGBA{255, 255, 0, 255}},
		{799, 499, color.RGBA{255, 255, 0, 255}},
	}
	for _, c := range checks {
		r, g, b, a := img.At(c.x, c.y).RGBA()
		got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		if got != c.want {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	iw := mustWriter(t, "encoded", 2, 2)
	iw.WritePixel(1, 1, core.NewVec3(0, 0, 255))

	var buf bytes.Buffer
	if err := iw.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, _, b, _ := img.At(1, 1).RGBA(); b>>8 != 255 {
		t.Errorf("Expected a blue pixel, got %v", img.At(1, 1))
	}
}
