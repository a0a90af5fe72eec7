package geometry

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Cylinder is a finite tube closed by two flat caps. The base cap is centered
// at the axis origin and the top cap at origin + direction*height.
type Cylinder struct {
	Surface
	Axis   core.Ray
	Radius float64
	Height float64
}

// NewCylinder creates a capped cylinder
func NewCylinder(axis core.Ray, radius, height float64) (*Cylinder, error) {
	if err := validateAxis(axis, radius); err != nil {
		return nil, err
	}
	if height <= 0 || math.IsInf(height, 0) || math.IsNaN(height) {
		return nil, fmt.Errorf("%w: cylinder height must be positive, got %g", ErrInvalidGeometry, height)
	}
	return &Cylinder{Axis: core.NewRay(axis.Origin, axis.Direction), Radius: radius, Height: height}, nil
}

// Top returns the center of the top cap
func (c *Cylinder) Top() core.Vec3 {
	return c.Axis.At(c.Height)
}

// NormalAt returns -axis on the base cap, +axis on the top cap and the radial direction on the side
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	h := point.Subtract(c.Axis.Origin).Dot(c.Axis.Direction)
	switch {
	case core.IsZero(h):
		return c.Axis.Direction.Negate()
	case core.IsZero(h - c.Height):
		return c.Axis.Direction
	default:
		return radialNormal(c.Axis, point)
	}
}

// Intersect tests the ray against the side and both caps
func (c *Cylinder) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	dir := c.Axis.Direction
	radial := axisDistance(c.Axis, ray.Origin)

	// A ray running along the axis line is degenerate
	parallel := ray.Direction.Cross(dir).IsZero()
	if parallel && core.IsZero(radial) {
		return nil
	}

	var ts []float64

	if t1, t2, ok := tubeRoots(ray, c.Axis, c.Radius); ok {
		for _, t := range [2]float64{t1, t2} {
			if !withinRange(t, maxDistance) {
				continue
			}
			h := ray.At(t).Subtract(c.Axis.Origin).Dot(dir)
			if core.AlignZero(h) > 0 && core.AlignZero(h-c.Height) < 0 {
				ts = append(ts, t)
			}
		}
	}

	denominator := core.AlignZero(ray.Direction.Dot(dir))
	if denominator != 0 {
		for _, center := range [2]core.Vec3{c.Axis.Origin, c.Top()} {
			t := center.Subtract(ray.Origin).Dot(dir) / denominator
			if !withinRange(t, maxDistance) {
				continue
			}
			if core.AlignZero(ray.At(t).Distance(center)-c.Radius) < 0 {
				ts = append(ts, t)
			}
		}
	}

	if len(ts) == 0 {
		return nil
	}

	slices.SortFunc(ts, cmp.Compare[float64])
	hits := make([]GeoPoint, len(ts))
	for i, t := range ts {
		hits[i] = GeoPoint{Geometry: c, Point: ray.At(t)}
	}
	return hits
}
