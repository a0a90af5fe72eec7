package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/scene"
)

// ErrInvalidCameraConfig is wrapped by every camera validation failure
var ErrInvalidCameraConfig = errors.New("invalid camera config")

// Thread modes for CameraConfig.Threads. Positive values request that many workers.
const (
	ThreadsSequential = 0  // Render on the calling goroutine
	ThreadsBulk       = -1 // One goroutine per CPU over interleaved pixel indices
	ThreadsAuto       = -2 // Worker pool sized to the CPU count minus SpareThreads

	// SpareThreads is how many CPUs ThreadsAuto leaves free
	SpareThreads = 2
)

// CameraConfig contains all camera and pixel-scheduling parameters
type CameraConfig struct {
	Position          core.Vec3 // Camera position
	To                core.Vec3 // Viewing direction
	Up                core.Vec3 // Up direction, perpendicular to To
	ViewPlaneWidth    float64   // View plane size in scene units
	ViewPlaneHeight   float64
	ViewPlaneDistance float64 // Distance from the position to the view plane
	SamplesPerPixel   int     // Rays per pixel, a perfect square
	Threads           int     // See the Threads* constants
	ProgressInterval  float64 // Percent between progress reports, 0 disables them
}

// DefaultCameraConfig returns a camera at the origin looking down -Z through a unit view plane
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:          core.Zero,
		To:                core.NewVec3(0, 0, -1),
		Up:                core.AxisY,
		ViewPlaneWidth:    1,
		ViewPlaneHeight:   1,
		ViewPlaneDistance: 1,
		SamplesPerPixel:   1,
		Threads:           ThreadsSequential,
		ProgressInterval:  0,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.To != (core.Vec3{}) {
		result.To = override.To
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.ViewPlaneWidth != 0 {
		result.ViewPlaneWidth = override.ViewPlaneWidth
	}
	if override.ViewPlaneHeight != 0 {
		result.ViewPlaneHeight = override.ViewPlaneHeight
	}
	if override.ViewPlaneDistance != 0 {
		result.ViewPlaneDistance = override.ViewPlaneDistance
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.Threads != 0 {
		result.Threads = override.Threads
	}
	if override.ProgressInterval != 0 {
		result.ProgressInterval = override.ProgressInterval
	}

	return result
}

// CameraConfigFromView places the camera where the scene recommends
func CameraConfigFromView(view scene.View, sampling scene.SamplingConfig) CameraConfig {
	return MergeCameraConfig(DefaultCameraConfig(), CameraConfig{
		Position:          view.Position,
		To:                view.To,
		Up:                view.Up,
		ViewPlaneWidth:    view.ViewPlaneWidth,
		ViewPlaneHeight:   view.ViewPlaneHeight,
		ViewPlaneDistance: view.ViewPlaneDistance,
		SamplesPerPixel:   sampling.SamplesPerPixel,
	})
}

// ValidateCameraConfig checks every field before any rendering starts
func ValidateCameraConfig(cfg CameraConfig) error {
	if cfg.To.IsZero() {
		return fmt.Errorf("%w: to: %w", ErrInvalidCameraConfig, core.ErrZeroVector)
	}
	if cfg.Up.IsZero() {
		return fmt.Errorf("%w: up: %w", ErrInvalidCameraConfig, core.ErrZeroVector)
	}
	if !core.IsZero(cfg.To.Normalize().Dot(cfg.Up.Normalize())) {
		return fmt.Errorf("%w: to %v and up %v are not perpendicular", ErrInvalidCameraConfig, cfg.To, cfg.Up)
	}
	if !positive(cfg.ViewPlaneWidth) || !positive(cfg.ViewPlaneHeight) {
		return fmt.Errorf("%w: view plane size must be positive, got %gx%g",
			ErrInvalidCameraConfig, cfg.ViewPlaneWidth, cfg.ViewPlaneHeight)
	}
	if !positive(cfg.ViewPlaneDistance) {
		return fmt.Errorf("%w: view plane distance must be positive, got %g", ErrInvalidCameraConfig, cfg.ViewPlaneDistance)
	}
	if cfg.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidCameraConfig, cfg.SamplesPerPixel)
	}
	if n := beamSize(cfg.SamplesPerPixel); n*n != cfg.SamplesPerPixel {
		return fmt.Errorf("%w: samples per pixel must be a perfect square, got %d", ErrInvalidCameraConfig, cfg.SamplesPerPixel)
	}
	if cfg.Threads < ThreadsAuto {
		return fmt.Errorf("%w: threads must be %d or more, got %d", ErrInvalidCameraConfig, ThreadsAuto, cfg.Threads)
	}
	if cfg.ProgressInterval < 0 || cfg.ProgressInterval > 100 {
		return fmt.Errorf("%w: progress interval must be within [0, 100], got %g", ErrInvalidCameraConfig, cfg.ProgressInterval)
	}
	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// beamSize returns the side of the sub-pixel grid
func beamSize(samples int) int {
	return int(math.Round(math.Sqrt(float64(samples))))
}

// Camera maps pixels to rays through its view plane. It is immutable after creation.
type Camera struct {
	config   CameraConfig
	position core.Vec3
	to       core.Vec3
	up       core.Vec3
	right    core.Vec3
	center   core.Vec3 // View plane center
	beam     int       // Sub-pixel grid side
}

// NewCamera validates the config and derives the camera basis
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if err := ValidateCameraConfig(cfg); err != nil {
		return nil, err
	}

	to := cfg.To.Normalize()
	up := cfg.Up.Normalize()

	return &Camera{
		config:   cfg,
		position: cfg.Position,
		to:       to,
		up:       up,
		right:    to.Cross(up).Normalize(),
		center:   cfg.Position.Add(to.Multiply(cfg.ViewPlaneDistance)),
		beam:     beamSize(cfg.SamplesPerPixel),
	}, nil
}

// Config returns the validated configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Right returns the camera's right vector, to × up
func (c *Camera) Right() core.Vec3 {
	return c.right
}

// ConstructRay returns the ray through the center of pixel (j, i) of an nX by nY image.
// Column j grows to the right and row i grows downwards.
func (c *Camera) ConstructRay(nX, nY, j, i int) core.Ray {
	return c.rayThrough(nX, nY, float64(j), float64(i))
}

// ConstructBeam returns SamplesPerPixel rays through an n×n grid of sub-pixel
// centers of pixel (j, i), in row-major order from the top-left sub-pixel
func (c *Camera) ConstructBeam(nX, nY, j, i int) []core.Ray {
	if c.beam == 1 {
		return []core.Ray{c.ConstructRay(nX, nY, j, i)}
	}

	n := float64(c.beam)
	rays := make([]core.Ray, 0, c.beam*c.beam)
	for row := 0; row < c.beam; row++ {
		y := float64(i) - 0.5 + (float64(row)+0.5)/n
		for col := 0; col < c.beam; col++ {
			x := float64(j) - 0.5 + (float64(col)+0.5)/n
			rays = append(rays, c.rayThrough(nX, nY, x, y))
		}
	}
	return rays
}

// rayThrough accepts fractional pixel coordinates
func (c *Camera) rayThrough(nX, nY int, j, i float64) core.Ray {
	rx := c.config.ViewPlaneWidth / float64(nX)
	ry := c.config.ViewPlaneHeight / float64(nY)

	xj := (j - float64(nX-1)/2) * rx
	yi := -(i - float64(nY-1)/2) * ry

	point := c.center
	if !core.IsZero(xj) {
		point = point.Add(c.right.Multiply(xj))
	}
	if !core.IsZero(yi) {
		point = point.Add(c.up.Multiply(yi))
	}
	return core.NewRay(c.position, point.Subtract(c.position))
}

// PrintGrid draws grid lines of the given color every interval pixels.
// The interval must divide both sink dimensions so the grid has whole squares.
func (c *Camera) PrintGrid(sink PixelSink, interval int, color core.Vec3) error {
	width, height := sink.Width(), sink.Height()
	if interval <= 0 || width%interval != 0 || height%interval != 0 {
		return fmt.Errorf("grid interval %d must divide the image size %dx%d", interval, width, height)
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x%interval == 0 || (x+1)%interval == 0 || y%interval == 0 || (y+1)%interval == 0 {
				sink.WritePixel(x, y, color)
			}
		}
	}
	return nil
}
