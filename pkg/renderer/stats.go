package renderer

import (
	"time"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of primary rays traced
	AverageSamples float64       // Average rays per pixel
	MaxSamples     int           // Rays per pixel requested by the camera
	MinSamples     int           // Fewest rays traced for a pixel
	MaxSamplesUsed int           // Most rays traced for a pixel
	Workers        int           // Goroutines that rendered pixels
	Duration       time.Duration // Wall time of the render
}

// addPixel records one finished pixel
func (rs *RenderStats) addPixel(samples int) {
	if rs.TotalPixels == 0 || samples < rs.MinSamples {
		rs.MinSamples = samples
	}
	if samples > rs.MaxSamplesUsed {
		rs.MaxSamplesUsed = samples
	}
	rs.TotalPixels++
	rs.TotalSamples += samples
}

// merge folds another worker's counters into these
func (rs *RenderStats) merge(other RenderStats) {
	if other.TotalPixels == 0 {
		return
	}
	if rs.TotalPixels == 0 || other.MinSamples < rs.MinSamples {
		rs.MinSamples = other.MinSamples
	}
	if other.MaxSamplesUsed > rs.MaxSamplesUsed {
		rs.MaxSamplesUsed = other.MaxSamplesUsed
	}
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
}

// finalize computes the derived averages
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// AddWeighted adds a color that stands for count samples
func (ps *PixelStats) AddWeighted(color core.Vec3, count int) {
	ps.ColorAccum = ps.ColorAccum.Add(color.Multiply(float64(count)))
	ps.SampleCount += count
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
