package lights

import "github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"

// PointLight radiates equally in every direction from a position
type PointLight struct {
	Attenuation
	Color    core.Vec3
	Position core.Vec3
}

// NewPointLight creates a point light with no distance falloff.
// Set Kl and Kq on the returned light to attenuate it.
func NewPointLight(color, position core.Vec3) *PointLight {
	return &PointLight{
		Attenuation: DefaultAttenuation(),
		Color:       color,
		Position:    position,
	}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Intensity returns the color divided by the attenuation at the point's distance
func (pl *PointLight) Intensity(point core.Vec3) core.Vec3 {
	return pl.Color.Multiply(1 / pl.Factor(pl.Distance(point)))
}

// Direction returns the unit vector from the light position to the point
func (pl *PointLight) Direction(point core.Vec3) core.Vec3 {
	return point.Subtract(pl.Position).Normalize()
}

// Distance returns the distance between the light position and the point
func (pl *PointLight) Distance(point core.Vec3) float64 {
	return pl.Position.Distance(point)
}
