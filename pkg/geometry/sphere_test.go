package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
)

const tolerance = 1e-9

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return s
}

func assertPoints(t *testing.T, expected []core.Vec3, hits []GeoPoint) {
	t.Helper()
	if len(hits) != len(expected) {
		t.Fatalf("Expected %d hits, got %d: %v", len(expected), len(hits), Points(hits))
	}
	for i, hit := range hits {
		if !hit.Point.ApproxEqual(expected[i], 1e-6) {
			t.Errorf("Hit %d: expected %v, got %v", i, expected[i], hit.Point)
		}
	}
}

func TestNewSphere_RejectsBadRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if _, err := NewSphere(core.Zero, r); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("radius %g: expected ErrInvalidGeometry, got %v", r, err)
		}
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := mustSphere(t, core.Zero, 2)
	point := core.NewVec3(1.73, 0, 1)

	normal := sphere.NormalAt(point)
	expected := point.Normalize()
	if !normal.ApproxEqual(expected, tolerance) {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
	if math.Abs(normal.Length()-1) > tolerance {
		t.Errorf("Expected unit normal, got length %f", normal.Length())
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(1, 0, 0), 1)
	p1 := core.NewVec3(0.0651530771650466, 0.355051025721682, 0)
	p2 := core.NewVec3(1.53484692283495, 0.844948974278318, 0)

	tests := []struct {
		name     string
		ray      core.Ray
		expected []core.Vec3
	}{
		{"ray misses", core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 1, 0)), nil},
		{"ray crosses sphere", core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(3, 1, 0)), []core.Vec3{p1, p2}},
		{"ray starts inside", core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(3, 1, 0)), []core.Vec3{p2}},
		{"ray starts after sphere", core.NewRay(core.NewVec3(2, 1, 0), core.NewVec3(3, 1, 0)), nil},
		{"ray starts at center", core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)), []core.Vec3{core.NewVec3(1, 1, 0)}},
		{"ray starts on surface going in", core.NewRay(core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0)), []core.Vec3{core.NewVec3(1, 1, 0)}},
		{"ray starts on surface through center", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0)), []core.Vec3{core.Zero}},
		{"ray starts on surface going out", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(1, 0, 0)), nil},
		{"tangent ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)), nil},
		{"ray through center from outside", core.NewRay(core.NewVec3(1, -2, 0), core.NewVec3(0, 1, 0)),
			[]core.Vec3{core.NewVec3(1, -1, 0), core.NewVec3(1, 1, 0)}},
		{"orthogonal ray outside", core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, 1)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPoints(t, tt.expected, Intersections(sphere, tt.ray))
		})
	}
}

func TestSphere_Intersect_MaxDistance(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1)
	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))

	tests := []struct {
		name        string
		maxDistance float64
		expected    int
	}{
		{"both hits in range", 10, 2},
		{"only near hit", 5, 1},
		{"hit exactly at max distance", 4, 1},
		{"nothing in range", 3.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := sphere.Intersect(ray, tt.maxDistance)
			if len(hits) != tt.expected {
				t.Errorf("Expected %d hits, got %d", tt.expected, len(hits))
			}
			for _, hit := range hits {
				if d := ray.Origin.Distance(hit.Point); d > tt.maxDistance+tolerance {
					t.Errorf("Hit at distance %f beyond max %f", d, tt.maxDistance)
				}
			}
		})
	}
}

func TestSphere_Intersect_FromCenterHitsAtRadius(t *testing.T) {
	centers := []core.Vec3{core.Zero, core.NewVec3(3, -2, 7), core.NewVec3(-100, 50, 0.5)}
	directions := []core.Vec3{core.AxisX, core.NewVec3(1, 2, 3), core.NewVec3(-1, 0.5, -2)}

	for _, center := range centers {
		for _, direction := range directions {
			sphere := mustSphere(t, center, 2.5)
			hits := Intersections(sphere, core.NewRay(center, direction))
			if len(hits) != 1 {
				t.Fatalf("Expected one hit from the center, got %d", len(hits))
			}
			if d := hits[0].Point.Distance(center); math.Abs(d-2.5) > tolerance {
				t.Errorf("Expected hit at distance 2.5, got %f", d)
			}
		}
	}
}
