package geometry

import (
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Triangle is a polygon with exactly three vertices
type Triangle struct {
	Surface
	V0, V1, V2 core.Vec3
	vertices   []core.Vec3
	plane      *Plane
}

// NewTriangle creates a triangle from three distinct, non-collinear points
func NewTriangle(v0, v1, v2 core.Vec3) (*Triangle, error) {
	plane, err := NewPlaneFromPoints(v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		vertices: []core.Vec3{v0, v1, v2},
		plane:    plane,
	}, nil
}

// NormalAt returns the triangle's face normal, (V1-V0)×(V2-V0) normalized
func (t *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return t.plane.Normal
}

// Intersect tests the ray against the triangle. Points on an edge or a vertex are misses.
func (t *Triangle) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	point, ok := intersectFlat(t.plane, t.vertices, ray, maxDistance)
	if !ok {
		return nil
	}
	return []GeoPoint{{Geometry: t, Point: point}}
}
