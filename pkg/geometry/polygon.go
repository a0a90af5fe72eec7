package geometry

import (
	"fmt"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Polygon is a flat convex polygon given by its ordered vertices
type Polygon struct {
	Surface
	vertices []core.Vec3
	plane    *Plane
}

// NewPolygon creates a convex polygon. The vertices must be ordered along the
// boundary, coplanar, and no three consecutive vertices may be collinear.
func NewPolygon(vertices ...core.Vec3) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidGeometry, len(vertices))
	}

	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2])
	if err != nil {
		return nil, err
	}

	if err := validateConvex(vertices, plane.Normal); err != nil {
		return nil, err
	}

	return &Polygon{
		vertices: append([]core.Vec3(nil), vertices...),
		plane:    plane,
	}, nil
}

// NormalAt returns the normal of the supporting plane
func (p *Polygon) NormalAt(core.Vec3) core.Vec3 {
	return p.plane.Normal
}

// Intersect tests the ray against the polygon
func (p *Polygon) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	point, ok := intersectFlat(p.plane, p.vertices, ray, maxDistance)
	if !ok {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: point}}
}

// intersectFlat hits the supporting plane, then keeps the point only if it lies
// strictly inside the convex outline.
func intersectFlat(plane *Plane, vertices []core.Vec3, ray core.Ray, maxDistance float64) (core.Vec3, bool) {
	t, ok := plane.hitDistance(ray)
	if !ok || !withinRange(t, maxDistance) {
		return core.Vec3{}, false
	}

	point := ray.At(t)
	if !insideConvex(vertices, plane.Normal, point) {
		return core.Vec3{}, false
	}
	return point, true
}

// insideConvex reports whether a point on the polygon's plane lies strictly inside it.
// Each edge contributes sign(n·(e_i × (P - p_i))); all signs must agree, and a zero
// term (point on an edge or its extension) counts as outside.
func insideConvex(vertices []core.Vec3, normal, point core.Vec3) bool {
	sign := 0
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		s := core.Sign(normal.Dot(next.Subtract(v).Cross(point.Subtract(v))))
		if s == 0 {
			return false
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// validateConvex checks the polygon invariants against the plane of the first three vertices
func validateConvex(vertices []core.Vec3, normal core.Vec3) error {
	size := len(vertices)

	for i, v := range vertices {
		if vertices[(i+1)%size].Subtract(v).IsZero() {
			return fmt.Errorf("%w: polygon vertices %d and %d coincide", ErrInvalidGeometry, i, (i+1)%size)
		}
	}

	// Triangles are always flat and convex once the plane exists
	if size == 3 {
		return nil
	}

	for i := 3; i < size; i++ {
		if !core.IsZero(vertices[i].Subtract(vertices[0]).Dot(normal)) {
			return fmt.Errorf("%w: polygon vertex %d is not on the polygon plane", ErrInvalidGeometry, i)
		}
	}

	// Consecutive edge pairs must all turn the same way around the normal
	sign := 0
	for i := range vertices {
		edge1 := vertices[(i+1)%size].Subtract(vertices[i])
		edge2 := vertices[(i+2)%size].Subtract(vertices[(i+1)%size])
		s := core.Sign(edge1.Cross(edge2).Dot(normal))
		if s == 0 {
			return fmt.Errorf("%w: polygon vertices around %d are collinear", ErrInvalidGeometry, (i+1)%size)
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return fmt.Errorf("%w: polygon vertices must be ordered and convex", ErrInvalidGeometry)
		}
	}
	return nil
}
