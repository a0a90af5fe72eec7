package renderer

import (
	"sync"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Pixel identifies one image pixel by column and row
type Pixel struct {
	X, Y int
}

// PixelScheduler hands out every pixel of an image exactly once, in row-major
// order, to any number of goroutines, and reports progress as pixels finish.
type PixelScheduler struct {
	mu     sync.Mutex
	width  int
	height int
	total  int
	next   int // Index of the next pixel to hand out
	done   int // Pixels reported finished

	interval  int // Progress step in tenths of a percent, 0 disables reports
	lastTenth int // Last reported progress in tenths of a percent
	logger    core.Logger
}

// NewPixelScheduler creates a scheduler for a width×height image. A positive
// progressInterval logs "%5.1f%%" each time progress advances by that many percent.
func NewPixelScheduler(width, height int, progressInterval float64, logger core.Logger) *PixelScheduler {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	ps := &PixelScheduler{
		width:    width,
		height:   height,
		total:    width * height,
		interval: int(progressInterval * 10),
		logger:   logger,
	}
	if progressInterval > 0 && ps.interval == 0 {
		ps.interval = 1
	}
	if ps.interval > 0 && ps.total > 0 {
		ps.logger.Printf("%5.1f%%\n", 0.0)
	}
	return ps
}

// Next returns the next unclaimed pixel, or false once every pixel was handed out
func (ps *PixelScheduler) Next() (Pixel, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.next >= ps.total {
		return Pixel{}, false
	}
	p := Pixel{X: ps.next % ps.width, Y: ps.next / ps.width}
	ps.next++
	return p, true
}

// Done records one finished pixel
func (ps *PixelScheduler) Done() {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.done++
	if ps.interval == 0 {
		return
	}

	tenth := ps.done * 1000 / ps.total
	if tenth-ps.lastTenth >= ps.interval || (ps.done == ps.total && tenth != ps.lastTenth) {
		ps.lastTenth = tenth
		ps.logger.Printf("%5.1f%%\n", float64(tenth)/10)
	}
}

// Completed returns how many pixels were reported finished
func (ps *PixelScheduler) Completed() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.done
}

// Total returns the number of pixels in the image
func (ps *PixelScheduler) Total() int {
	return ps.total
}
