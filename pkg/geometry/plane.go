package geometry

import (
	"fmt"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane from a point and a normal vector
func NewPlane(point, normal core.Vec3) (*Plane, error) {
	if normal.IsZero() {
		return nil, fmt.Errorf("%w: plane normal: %w", ErrInvalidGeometry, core.ErrZeroVector)
	}
	return &Plane{Point: point, Normal: normal.Normalize()}, nil
}

// NewPlaneFromPoints creates the plane through three points.
// The points must be distinct and not on one line.
func NewPlaneFromPoints(p1, p2, p3 core.Vec3) (*Plane, error) {
	v1 := p2.Subtract(p1)
	v2 := p3.Subtract(p1)
	if v1.IsZero() || v2.IsZero() || p3.Subtract(p2).IsZero() {
		return nil, fmt.Errorf("%w: plane points must be distinct", ErrInvalidGeometry)
	}

	normal := v1.Cross(v2)
	if normal.IsZero() {
		return nil, fmt.Errorf("%w: plane points must not be collinear", ErrInvalidGeometry)
	}

	return &Plane{Point: p1, Normal: normal.Normalize()}, nil
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Intersect tests the ray against the plane
func (p *Plane) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	t, ok := p.hitDistance(ray)
	if !ok || !withinRange(t, maxDistance) {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: ray.At(t)}}
}

// hitDistance solves n·(O + tD - Q) = 0 for t.
// Rays parallel to the plane and rays starting on it have no solution.
func (p *Plane) hitDistance(ray core.Ray) (float64, bool) {
	denominator := core.AlignZero(p.Normal.Dot(ray.Direction))
	if denominator == 0 {
		return 0, false
	}

	toPlane := p.Point.Subtract(ray.Origin)
	if toPlane.IsZero() {
		return 0, false
	}

	numerator := core.AlignZero(p.Normal.Dot(toPlane))
	if numerator == 0 {
		return 0, false
	}

	return core.AlignZero(numerator / denominator), true
}
