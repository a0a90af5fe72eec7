package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrWorkerPanic is wrapped by the error returned for a worker that panicked
var ErrWorkerPanic = errors.New("render worker panicked")

// PixelFunc renders one pixel and returns the number of rays it traced
type PixelFunc func(p Pixel) int

// WorkerResult contains the outcome of one worker's share of the image
type WorkerResult struct {
	WorkerID int
	Stats    RenderStats
	Err      error
}

// WorkerPool renders pixels in parallel, each worker pulling from a shared scheduler
type WorkerPool struct {
	scheduler   *PixelScheduler
	resultQueue chan WorkerResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders pixels until the scheduler runs dry or the render is cancelled
type Worker struct {
	ID          int
	scheduler   *PixelScheduler
	render      PixelFunc
	resultQueue chan WorkerResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(scheduler *PixelScheduler, numWorkers int, render PixelFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		scheduler:   scheduler,
		resultQueue: make(chan WorkerResult, numWorkers), // One result per worker
		numWorkers:  numWorkers,
	}

	for i := range numWorkers {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scheduler:   scheduler,
			render:      render,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Wait blocks until every worker stops and merges their results
func (wp *WorkerPool) Wait() (RenderStats, error) {
	wp.wg.Wait()
	close(wp.resultQueue)

	results := make([]WorkerResult, 0, wp.numWorkers)
	for result := range wp.resultQueue {
		results = append(results, result)
	}
	return mergeResults(results)
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	result := WorkerResult{WorkerID: w.ID}
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, w.ID, r)
		}
		w.resultQueue <- result
	}()

	for ctx.Err() == nil {
		p, ok := w.scheduler.Next()
		if !ok {
			return
		}
		result.Stats.addPixel(w.render(p))
		w.scheduler.Done()
	}
	result.Err = ctx.Err()
}

// mergeResults folds per-worker stats together and joins any errors
func mergeResults(results []WorkerResult) (RenderStats, error) {
	var stats RenderStats
	var errs []error
	for _, result := range results {
		stats.merge(result.Stats)
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}
	stats.Workers = len(results)
	stats.finalize()
	return stats, errors.Join(errs...)
}
