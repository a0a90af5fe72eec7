package geometry

import (
	"fmt"
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: sphere radius must be positive, got %g", ErrInvalidGeometry, radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// NormalAt returns the outward normal, from the center to the point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Intersect tests the ray against the sphere
func (s *Sphere) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	// Vector from ray origin to sphere center
	u := s.Center.Subtract(ray.Origin)

	// A ray leaving the center crosses the surface exactly once, at distance r
	if u.IsZero() {
		if !withinRange(s.Radius, maxDistance) {
			return nil
		}
		return []GeoPoint{{Geometry: s, Point: ray.At(s.Radius)}}
	}

	// Project the center onto the ray, then step back and forth by the half-chord
	tm := ray.Direction.Dot(u)
	dSquared := u.LengthSquared() - tm*tm
	thSquared := core.AlignZero(s.Radius*s.Radius - dSquared)

	// Misses and tangent rays produce no intersection
	if thSquared <= 0 {
		return nil
	}

	th := math.Sqrt(thSquared)
	var hits []GeoPoint
	for _, t := range [2]float64{tm - th, tm + th} {
		if withinRange(t, maxDistance) {
			hits = append(hits, GeoPoint{Geometry: s, Point: ray.At(t)})
		}
	}
	return hits
}
