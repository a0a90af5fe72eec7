package geometry

import (
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

// Geometries is a composite of intersectables. It is itself Intersectable,
// so composites can be nested.
type Geometries struct {
	shapes []Intersectable
}

// NewGeometries creates a composite holding the given shapes
func NewGeometries(shapes ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(shapes...)
	return g
}

// Add appends shapes to the composite
func (g *Geometries) Add(shapes ...Intersectable) {
	g.shapes = append(g.shapes, shapes...)
}

// Len returns the number of direct members
func (g *Geometries) Len() int {
	return len(g.shapes)
}

// Intersect concatenates the hits of every member. The result is not sorted
// across members; use Closest to pick the nearest one.
func (g *Geometries) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, shape := range g.shapes {
		hits = append(hits, shape.Intersect(ray, maxDistance)...)
	}
	return hits
}
