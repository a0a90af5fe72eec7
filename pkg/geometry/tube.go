package geometry

import (
	"fmt"
	"math"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Tube is an infinite cylinder around an axis ray
type Tube struct {
	Surface
	Axis   core.Ray
	Radius float64
}

// NewTube creates an infinite tube of the given radius around the axis
func NewTube(axis core.Ray, radius float64) (*Tube, error) {
	if err := validateAxis(axis, radius); err != nil {
		return nil, err
	}
	return &Tube{Axis: core.NewRay(axis.Origin, axis.Direction), Radius: radius}, nil
}

// NormalAt returns the radial direction from the axis to the point
func (tb *Tube) NormalAt(point core.Vec3) core.Vec3 {
	return radialNormal(tb.Axis, point)
}

// Intersect tests the ray against the tube's lateral surface
func (tb *Tube) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	t1, t2, ok := tubeRoots(ray, tb.Axis, tb.Radius)
	if !ok {
		return nil
	}

	var hits []GeoPoint
	for _, t := range [2]float64{t1, t2} {
		if withinRange(t, maxDistance) {
			hits = append(hits, GeoPoint{Geometry: tb, Point: ray.At(t)})
		}
	}
	return hits
}

func validateAxis(axis core.Ray, radius float64) error {
	if axis.Direction.IsZero() {
		return fmt.Errorf("%w: axis direction: %w", ErrInvalidGeometry, core.ErrZeroVector)
	}
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidGeometry, radius)
	}
	return nil
}

// perpendicular removes the component of v along the unit axis direction
func perpendicular(v, axis core.Vec3) core.Vec3 {
	return v.Subtract(axis.Multiply(v.Dot(axis)))
}

// axisDistance returns the distance from a point to the axis line
func axisDistance(axis core.Ray, point core.Vec3) float64 {
	return perpendicular(point.Subtract(axis.Origin), axis.Direction).Length()
}

// radialNormal returns the unit vector from the axis line to the point
func radialNormal(axis core.Ray, point core.Vec3) core.Vec3 {
	toPoint := point.Subtract(axis.Origin)
	t := axis.Direction.Dot(toPoint)
	if core.IsZero(t) {
		return toPoint.Normalize()
	}
	center := axis.At(t)
	return point.Subtract(center).Normalize()
}

// tubeRoots solves |((O + tD) - P0)⊥|² = r², where ⊥ drops the axis component.
// It reports false for rays parallel to the axis and for rays that miss or graze the tube.
// The roots are returned in increasing order.
func tubeRoots(ray, axis core.Ray, radius float64) (float64, float64, bool) {
	dPerp := perpendicular(ray.Direction, axis.Direction)
	a := core.AlignZero(dPerp.LengthSquared())
	if a == 0 {
		return 0, 0, false
	}

	deltaPerp := perpendicular(ray.Origin.Subtract(axis.Origin), axis.Direction)
	b := 2 * dPerp.Dot(deltaPerp)
	c := deltaPerp.LengthSquared() - radius*radius

	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant <= 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	return (-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a), true
}
