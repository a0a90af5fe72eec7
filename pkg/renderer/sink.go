package renderer

import "github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"

// PixelSink receives rendered pixel colors.
// WritePixel must be safe for concurrent calls on distinct pixels.
type PixelSink interface {
	Width() int
	Height() int
	WritePixel(x, y int, color core.Vec3)
}

// Tracer computes the color seen along a ray or averaged over a beam of rays
type Tracer interface {
	TraceRay(ray core.Ray) core.Vec3
	// TraceBeam returns the pixel color and how many rays were actually traced
	TraceBeam(rays []core.Ray) (core.Vec3, int)
}
