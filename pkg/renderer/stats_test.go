package renderer

import (
	"errors"
	"testing"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != core.Black {
		t.Errorf("Expected black for an empty pixel, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(10, 0, 0))
	ps.AddWeighted(core.NewVec3(0, 20, 0), 3)

	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
	if want := core.NewVec3(2.5, 15, 0); !ps.GetColor().ApproxEqual(want, 1e-12) {
		t.Errorf("Expected %v, got %v", want, ps.GetColor())
	}
}

func TestRenderStats_AddPixelAndMerge(t *testing.T) {
	var a, b RenderStats
	a.addPixel(4)
	a.addPixel(16)
	b.addPixel(1)
	b.addPixel(9)

	a.merge(b)
	a.merge(RenderStats{})
	a.finalize()

	if a.TotalPixels != 4 || a.TotalSamples != 30 {
		t.Errorf("Expected 4 pixels and 30 samples, got %d and %d", a.TotalPixels, a.TotalSamples)
	}
	if a.MinSamples != 1 || a.MaxSamplesUsed != 16 {
		t.Errorf("Expected min 1 and max 16, got %d and %d", a.MinSamples, a.MaxSamplesUsed)
	}
	if a.AverageSamples != 7.5 {
		t.Errorf("Expected average 7.5, got %f", a.AverageSamples)
	}
}

func TestMergeResults(t *testing.T) {
	errA := errors.New("worker a failed")
	results := []WorkerResult{
		{WorkerID: 0, Stats: RenderStats{TotalPixels: 2, TotalSamples: 2, MinSamples: 1, MaxSamplesUsed: 1}},
		{WorkerID: 1, Err: errA},
	}

	stats, err := mergeResults(results)
	if !errors.Is(err, errA) {
		t.Errorf("Expected the worker error, got %v", err)
	}
	if stats.Workers != 2 || stats.TotalPixels != 2 {
		t.Errorf("Expected 2 workers and 2 pixels, got %d and %d", stats.Workers, stats.TotalPixels)
	}

	if _, err := mergeResults(results[:1]); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
