package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Render casts a beam through every pixel of the sink, shades it with the tracer
// and writes the result. Threads in the camera config picks how pixels are
// spread over goroutines; every mode writes the same image.
func (c *Camera) Render(ctx context.Context, tracer Tracer, sink PixelSink, logger core.Logger) (RenderStats, error) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if tracer == nil {
		return RenderStats{}, errors.New("render: nil tracer")
	}

	width, height := sink.Width(), sink.Height()
	if width <= 0 || height <= 0 {
		return RenderStats{}, fmt.Errorf("render: image size must be positive, got %dx%d", width, height)
	}

	start := time.Now()
	scheduler := NewPixelScheduler(width, height, c.config.ProgressInterval, logger)
	render := func(p Pixel) int {
		return c.renderPixel(tracer, sink, width, height, p)
	}

	var (
		stats RenderStats
		err   error
	)
	switch threads := c.config.Threads; {
	case threads == ThreadsSequential:
		stats, err = mergeResults([]WorkerResult{renderStrided(ctx, 0, 1, width, render, scheduler)})
	case threads == ThreadsBulk:
		stats, err = renderBulk(ctx, runtime.NumCPU(), width, render, scheduler)
	default:
		numWorkers := threads
		if threads == ThreadsAuto {
			numWorkers = max(1, runtime.NumCPU()-SpareThreads)
		}
		pool := NewWorkerPool(scheduler, numWorkers, render)
		logger.Printf("Starting %d workers\n", pool.GetNumWorkers())
		pool.Start(ctx)
		stats, err = pool.Wait()
	}

	stats.MaxSamples = c.config.SamplesPerPixel
	stats.Duration = time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return stats, ctxErr
	}
	if err != nil {
		return stats, err
	}

	logger.Printf("Render complete: %dx%d, %d rays (%.1f per pixel) on %d workers in %v\n",
		width, height, stats.TotalSamples, stats.AverageSamples, stats.Workers, stats.Duration)
	return stats, nil
}

// renderPixel shades one pixel and returns the number of rays traced for it
func (c *Camera) renderPixel(tracer Tracer, sink PixelSink, width, height int, p Pixel) int {
	color, samples := tracer.TraceBeam(c.ConstructBeam(width, height, p.X, p.Y))
	sink.WritePixel(p.X, p.Y, color)
	return samples
}

// renderBulk runs one goroutine per worker over interleaved pixel indices
func renderBulk(ctx context.Context, workers, width int, render PixelFunc, scheduler *PixelScheduler) (RenderStats, error) {
	results := make([]WorkerResult, workers)

	var wg sync.WaitGroup
	for id := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[id] = renderStrided(ctx, id, workers, width, render, scheduler)
		}()
	}
	wg.Wait()

	return mergeResults(results)
}

// renderStrided renders pixel indices first, first+stride, first+2·stride and so on.
// The scheduler is only used to report progress.
func renderStrided(ctx context.Context, first, stride, width int, render PixelFunc, scheduler *PixelScheduler) (result WorkerResult) {
	result.WorkerID = first
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, first, r)
		}
	}()

	for index := first; index < scheduler.Total(); index += stride {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}
		result.Stats.addPixel(render(Pixel{X: index % width, Y: index / width}))
		scheduler.Done()
	}
	return result
}
