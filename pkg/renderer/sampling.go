package renderer

import (
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// TraceBeam reduces a beam of rays to one color. It averages every ray, or,
// with adaptive sampling on and more than 4 rays in a square beam, subdivides
// the beam only where its corner colors differ.
func (rt *RayTracer) TraceBeam(rays []core.Ray) (core.Vec3, int) {
	switch len(rays) {
	case 0:
		return core.Black, 0
	case 1:
		return rt.TraceRay(rays[0]), 1
	}

	if n := beamSize(len(rays)); rt.config.AdaptiveSampling && len(rays) > 4 && n*n == len(rays) {
		return rt.traceAdaptive(rays, n)
	}

	var pixel PixelStats
	for _, ray := range rays {
		pixel.AddSample(rt.TraceRay(ray))
	}
	return pixel.GetColor(), len(rays)
}

// cell is a rectangle of the beam grid waiting to be sampled
type cell struct {
	row, col   int
	rows, cols int
	level      int
}

// traceAdaptive walks the n×n beam with an explicit stack of cells. A cell whose
// four corner colors are all similar contributes their mean once per ray it covers;
// small cells and cells at level 1 trace every ray. Colors are memoized by beam
// index since neighbouring cells share corners.
func (rt *RayTracer) traceAdaptive(rays []core.Ray, n int) (core.Vec3, int) {
	memo := make(map[int]core.Vec3, 4*rt.config.AdaptiveMaxLevel)
	trace := func(row, col int) core.Vec3 {
		index := row*n + col
		if color, ok := memo[index]; ok {
			return color
		}
		color := rt.TraceRay(rays[index])
		memo[index] = color
		return color
	}

	var pixel PixelStats
	stack := []cell{{row: 0, col: 0, rows: n, cols: n, level: rt.config.AdaptiveMaxLevel}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.level <= 1 || c.rows*c.cols <= 4 {
			for row := c.row; row < c.row+c.rows; row++ {
				for col := c.col; col < c.col+c.cols; col++ {
					pixel.AddSample(trace(row, col))
				}
			}
			continue
		}

		lastRow, lastCol := c.row+c.rows-1, c.col+c.cols-1
		corners := [4]core.Vec3{
			trace(c.row, c.col),
			trace(c.row, lastCol),
			trace(lastRow, c.col),
			trace(lastRow, lastCol),
		}

		if allSimilar(corners, rt.config.SimilarityThreshold) {
			mean := corners[0].Add(corners[1]).Add(corners[2]).Add(corners[3]).Multiply(0.25)
			pixel.AddWeighted(mean, c.rows*c.cols)
			continue
		}

		// Split into quadrants; odd sides give the extra row/column to the second half
		topRows, leftCols := c.rows/2, c.cols/2
		for _, q := range [4]cell{
			{c.row, c.col, topRows, leftCols, c.level - 1},
			{c.row, c.col + leftCols, topRows, c.cols - leftCols, c.level - 1},
			{c.row + topRows, c.col, c.rows - topRows, leftCols, c.level - 1},
			{c.row + topRows, c.col + leftCols, c.rows - topRows, c.cols - leftCols, c.level - 1},
		} {
			if q.rows > 0 && q.cols > 0 {
				stack = append(stack, q)
			}
		}
	}

	return pixel.GetColor(), len(memo)
}

// allSimilar reports whether every color is within threshold of the first one
func allSimilar(colors [4]core.Vec3, threshold float64) bool {
	for _, color := range colors[1:] {
		if !colors[0].IsSimilar(color, threshold) {
			return false
		}
	}
	return true
}
