package geometry

import (
	"errors"
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// ErrInvalidGeometry is wrapped by every shape constructor validation failure
var ErrInvalidGeometry = errors.New("invalid geometry")

// Intersectable is anything a ray can be tested against
type Intersectable interface {
	// Intersect returns the hits with 0 < t <= maxDistance, ordered by distance
	// from the ray origin for a single shape. It returns nil when nothing is hit.
	Intersect(ray core.Ray, maxDistance float64) []GeoPoint
}

// Geometry is a single renderable shape
type Geometry interface {
	Intersectable
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	Emission() core.Vec3
	Material() core.Material
}

// GeoPoint pairs an intersection point with the shape it lies on
type GeoPoint struct {
	Geometry Geometry
	Point    core.Vec3
}

// Surface holds the shading attributes shared by every shape
type Surface struct {
	emission core.Vec3
	material core.Material
}

// Emission returns the self-emitted color of the shape
func (s *Surface) Emission() core.Vec3 {
	return s.emission
}

// Material returns the shape's material
func (s *Surface) Material() core.Material {
	return s.material
}

// SetEmission sets the self-emitted color. Shapes are configured at scene-build time
// and never modified while rendering.
func (s *Surface) SetEmission(emission core.Vec3) {
	s.emission = emission
}

// SetMaterial sets the shape's material
func (s *Surface) SetMaterial(material core.Material) {
	s.material = material
}

// Intersections is a convenience wrapper for an unbounded intersection query
func Intersections(shape Intersectable, ray core.Ray) []GeoPoint {
	return shape.Intersect(ray, math.Inf(1))
}

// Points strips the owning shapes from a list of hits
func Points(hits []GeoPoint) []core.Vec3 {
	if len(hits) == 0 {
		return nil
	}
	points := make([]core.Vec3, len(hits))
	for i, hit := range hits {
		points[i] = hit.Point
	}
	return points
}

// Closest returns the hit nearest to the ray origin
func Closest(ray core.Ray, hits []GeoPoint) (GeoPoint, bool) {
	if len(hits) == 0 {
		return GeoPoint{}, false
	}
	closest := hits[0]
	closestDist := ray.Origin.DistanceSquared(closest.Point)
	for _, hit := range hits[1:] {
		if d := ray.Origin.DistanceSquared(hit.Point); d < closestDist {
			closest, closestDist = hit, d
		}
	}
	return closest, true
}

// withinRange reports whether a root is in front of the ray and no farther than maxDistance.
// Directions are unit length, so t is the distance.
func withinRange(t, maxDistance float64) bool {
	return core.AlignZero(t) > 0 && core.AlignZero(t-maxDistance) <= 0
}
