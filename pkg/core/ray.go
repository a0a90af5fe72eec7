package core

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewOffsetRay creates a ray whose origin is moved RayOffset along the normal,
// toward the side the direction points to. Secondary rays (shadow, reflection,
// refraction) use it so they do not hit the surface they leave.
func NewOffsetRay(point, direction, normal Vec3) Ray {
	nd := AlignZero(normal.Dot(direction))
	origin := point
	if nd > 0 {
		origin = point.Add(normal.Multiply(RayOffset))
	} else if nd < 0 {
		origin = point.Add(normal.Multiply(-RayOffset))
	}
	return NewRay(origin, direction)
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	if IsZero(t) {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Multiply(t))
}
